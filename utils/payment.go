package utils

import (
	"encoding/json"
	"fmt"
	"invest/config"
	"log"

	"github.com/go-resty/resty/v2"
)

// GatewayPayment is the gateway's view of one payment reference
type GatewayPayment struct {
	Reference string  `json:"reference"`
	Status    string  `json:"status"`
	Amount    float64 `json:"amount"`
}

// VerifyDepositPayment asks the payment gateway whether the given reference
// was actually paid. Used by the admin deposit confirmation before the
// balance is credited.
func VerifyDepositPayment(reference string) (*GatewayPayment, error) {
	client := resty.New()
	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+config.AppConfig.GatewayApiKey).
		Get(fmt.Sprintf("%s/payments/%s", config.AppConfig.GatewayApiURL, reference))
	if err != nil {
		log.Printf("Failed to reach payment gateway: %v", err)
		return nil, err
	}
	if resp.StatusCode() != 200 {
		log.Printf("Gateway lookup failed for %s: %s", reference, resp.String())
		return nil, fmt.Errorf("gateway returned status %d", resp.StatusCode())
	}

	var payment GatewayPayment
	if err := json.Unmarshal(resp.Body(), &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}
