package Alerts

import (
	"context"
	"fmt"
	"log"
	"os"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"Fleet/Models"
)

var firebaseClient *messaging.Client

// InitFirebase sets up the shared FCM client. Credentials file path
// comes from FIREBASE_CREDENTIALS, defaulting to serviceAccountKey.json.
func InitFirebase() error {
	credentials := os.Getenv("FIREBASE_CREDENTIALS")
	if credentials == "" {
		credentials = "serviceAccountKey.json"
	}

	opt := option.WithCredentialsFile(credentials)
	app, err := firebase.NewApp(context.Background(), nil, opt)
	if err != nil {
		return fmt.Errorf("error initializing firebase app: %v", err)
	}

	client, err := app.Messaging(context.Background())
	if err != nil {
		return fmt.Errorf("error getting messaging client: %v", err)
	}

	firebaseClient = client
	log.Println("Firebase messaging initialized")
	return nil
}

// SendPush delivers a notification to the registered device token.
// A missing client or token is not an error, pushes are best effort.
func SendPush(title, body string) {
	if firebaseClient == nil {
		return
	}
	token := Models.CurrentToken()
	if token == "" {
		return
	}

	message := &messaging.Message{
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				Sound: "default",
			},
		},
		Token: token,
	}

	if _, err := firebaseClient.Send(context.Background(), message); err != nil {
		log.Printf("Error sending push notification: %v", err)
	}
}
