package utils

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"quizapi/config"

	"github.com/go-resty/resty/v2"
)

// SendRetakeSMS notifies a participant that an administrator approved their
// retake. Callers decide whether a failure matters; the grant itself is
// already stored by the time this runs.
func SendRetakeSMS(phone, name string) error {
	if config.AppConfig.SmsApiKey == "" {
		return fmt.Errorf("SMS gateway is not configured")
	}

	message := fmt.Sprintf("Hi %s, your quiz retake has been approved. You can now take the quiz again.", name)

	client := resty.New().SetTimeout(10 * time.Second)
	resp, err := client.R().
		SetQueryParams(map[string]string{
			"authorization": config.AppConfig.SmsApiKey,
			"route":         "q",
			"sender_id":     config.AppConfig.SmsSenderID,
			"message":       message,
			"numbers":       phone,
		}).
		Get(config.AppConfig.SmsApiUrl)
	if err != nil {
		log.Printf("Error while sending retake SMS: %v", err)
		return err
	}

	if resp.StatusCode() != http.StatusOK {
		log.Printf("Failed to send retake SMS, response code: %d", resp.StatusCode())
		return fmt.Errorf("failed to send retake SMS, code: %d", resp.StatusCode())
	}

	log.Println("Retake SMS sent successfully to", phone)
	return nil
}
