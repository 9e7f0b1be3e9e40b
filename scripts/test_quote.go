// +build ignore

package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Ручная проверка расчёта тарифа против запущенного сервиса:
//
//	go run scripts/test_quote.go -addr http://localhost:8080 -type one-way
//	go run scripts/test_quote.go -type hourly -hours 4
//	go run scripts/test_quote.go -type return -wait 2

func main() {
	addr := flag.String("addr", "http://localhost:8080", "service address")
	bookingType := flag.String("type", "one-way", "booking type: one-way, hourly, return")
	hours := flag.Float64("hours", 4, "hours for hourly booking")
	wait := flag.Float64("wait", 2, "wait hours for wait-and-return")
	vehicle := flag.String("vehicle", "", "recalculate a single vehicle class")
	flag.Parse()

	pickup := map[string]float64{"lat": 51.5074, "lng": -0.1278}  // central London
	dropoff := map[string]float64{"lat": 51.4700, "lng": -0.4543} // Heathrow

	tomorrow := time.Now().AddDate(0, 0, 1)
	datetime := map[string]string{
		"date": tomorrow.Format("2006-01-02"),
		"time": "09:30",
	}

	payload := map[string]interface{}{
		"bookingType": *bookingType,
		"datetime":    datetime,
		"passengers":  map[string]int{"count": 2, "luggage": 1},
	}

	switch *bookingType {
	case "one-way":
		payload["oneWayDetails"] = map[string]interface{}{
			"pickup":  pickup,
			"dropoff": dropoff,
		}
	case "hourly":
		payload["hourlyDetails"] = map[string]interface{}{
			"hours":  *hours,
			"pickup": pickup,
		}
	case "return":
		payload["returnDetails"] = map[string]interface{}{
			"outboundPickup":  pickup,
			"outboundDropoff": dropoff,
			"returnType":      "wait-and-return",
			"waitDuration":    *wait,
		}
	default:
		log.Fatalf("unknown booking type: %s", *bookingType)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Fatalf("marshal payload: %v", err)
	}

	url := *addr + "/api/v1/quote"
	if *vehicle != "" {
		url += "/" + *vehicle
	}

	fmt.Printf("POST %s\n%s\n\n", url, body)

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("read response: %v", err)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, respBody, "", "  "); err != nil {
		fmt.Printf("status %d\n%s\n", resp.StatusCode, respBody)
		return
	}

	fmt.Printf("status %d\n%s\n", resp.StatusCode, pretty.String())
}
