package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const baseURL = "http://localhost:5000/api"

var statuses = []string{"PENDING", "IN_TRANSIT", "DELIVERED", "CANCELLED"}

func main() {
	token := register()

	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(func() { doRequest(token) })
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func register() string {
	body, _ := json.Marshal(map[string]string{
		"name":     "Load Tester",
		"email":    fmt.Sprintf("load%d@example.com", time.Now().UnixNano()),
		"password": "secret123",
	})
	resp, err := http.Post(baseURL+"/users/register", "application/json", bytes.NewReader(body))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()

	var res struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil || res.Token == "" {
		panic(fmt.Sprintf("не удалось зарегистрироваться: %s", resp.Status))
	}
	return res.Token
}

func doRequest(token string) {
	var req *http.Request
	switch rand.Intn(4) {
	case 0:
		body, _ := json.Marshal(map[string]any{
			"description":     "Parcel",
			"origin":          "Moscow",
			"destination":     "Kazan",
			"distance_km":     rand.Intn(2000) + 1,
			"weight_kg":       rand.Intn(20) + 1,
			"is_fragile":      rand.Intn(2) == 0,
			"shipping_method": []string{"STANDARD", "EXPRESS"}[rand.Intn(2)],
		})
		req, _ = http.NewRequest(http.MethodPost, baseURL+"/shipments", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	case 1:
		req, _ = http.NewRequest(http.MethodGet, baseURL+"/shipments/stats", nil)
	default:
		url := fmt.Sprintf("%s/shipments?status=%s&page=%d", baseURL, statuses[rand.Intn(len(statuses))], rand.Intn(3)+1)
		req, _ = http.NewRequest(http.MethodGet, url, nil)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	fmt.Println(req.Method, req.URL, "->", resp.Status)
	resp.Body.Close()
}
