package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type TrackingUpdate struct {
	TrackingNumber string     `json:"tracking_number"`
	Status         string     `json:"status"`
	DeliveredAt    *time.Time `json:"delivered_at,omitempty"`
}

var flow = []string{"PENDING", "IN_TRANSIT", "DELIVERED"}

func randomTrackingNumber() string {
	letters := []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	b := make([]rune, 3)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return fmt.Sprintf("STD%06d%s", rand.Intn(1000000), string(b))
}

// nextUpdate продвигает отправление по статусам, иногда отменяя его.
func nextUpdate(number string, step int) TrackingUpdate {
	if rand.Intn(10) == 0 {
		return TrackingUpdate{TrackingNumber: number, Status: "CANCELLED"}
	}
	status := flow[min(step, len(flow)-1)]
	upd := TrackingUpdate{TrackingNumber: number, Status: status}
	if status == "DELIVERED" {
		now := time.Now().UTC()
		upd.DeliveredAt = &now
	}
	return upd
}

func main() {
	brokers := flag.String("brokers", "localhost:9092", "comma separated kafka brokers")
	topic := flag.String("topic", "shipment-tracking", "tracking topic")
	interval := flag.Duration("interval", 2*time.Second, "delay between updates")
	flag.Parse()

	// без аргументов шлем несуществующие номера, они уходят в DLQ
	numbers := flag.Args()
	if len(numbers) == 0 {
		numbers = []string{randomTrackingNumber(), randomTrackingNumber()}
	}

	writer := &kafka.Writer{
		Addr:  kafka.TCP(strings.Split(*brokers, ",")...),
		Topic: *topic,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	steps := make(map[string]int, len(numbers))
	ticker := time.NewTicker(*interval)
	for {
		select {
		case <-ticker.C:
			number := numbers[rand.Intn(len(numbers))]
			steps[number]++
			upd := nextUpdate(number, steps[number])

			data, _ := json.Marshal(upd)
			if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(number), Value: data}); err != nil {
				log.Println("failed to write update:", err)
				continue
			}
			log.Println("tracking update sent", upd.TrackingNumber, upd.Status)
		case <-ctx.Done():
			return
		}
	}
}
