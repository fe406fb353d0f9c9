package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/shipment-tracker/internal/entities"

	"github.com/google/uuid"
)

type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type ShipmentGetter interface {
	Get(ctx context.Context, userID, id uuid.UUID) (entities.Shipment, error)
}

type PackingCache interface {
	Get(key string) (string, bool)
	Set(key string, value string)
}

type packingService struct {
	logger    *slog.Logger
	shipments ShipmentGetter
	generator TextGenerator
	cache     PackingCache
}

func NewPackingService(logger *slog.Logger, shipments ShipmentGetter, generator TextGenerator, cache PackingCache) *packingService {
	return &packingService{
		logger:    logger.With(slog.String("service", "packing")),
		shipments: shipments,
		generator: generator,
		cache:     cache,
	}
}

// PackingInstructions returns generated packing advice for a shipment of the caller.
// Instructions are cached until the shipment changes.
func (s *packingService) PackingInstructions(ctx context.Context, userID, id uuid.UUID) (entities.PackingInstructions, error) {
	shipment, err := s.shipments.Get(ctx, userID, id)
	if err != nil {
		return entities.PackingInstructions{}, err
	}

	key := packingCacheKey(shipment)
	if text, ok := s.cache.Get(key); ok {
		packingRequests.WithLabelValues("cached").Inc()
		return entities.PackingInstructions{Instructions: text, Shipment: shipment}, nil
	}

	start := time.Now()
	text, err := s.generator.Generate(ctx, BuildPackingPrompt(shipment))
	packingGenerationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		packingRequests.WithLabelValues("failed").Inc()
		return entities.PackingInstructions{}, &entities.UpstreamError{Err: err}
	}

	packingRequests.WithLabelValues("generated").Inc()
	s.cache.Set(key, text)
	s.logger.DebugContext(ctx, "packing instructions generated", slog.String("shipment_id", shipment.ID.String()))

	return entities.PackingInstructions{Instructions: text, Shipment: shipment}, nil
}

func packingCacheKey(s entities.Shipment) string {
	return fmt.Sprintf("%s:%d", s.ID, s.UpdatedAt.UnixNano())
}

// BuildPackingPrompt describes the shipment to the text generator.
func BuildPackingPrompt(s entities.Shipment) string {
	fragility := "not fragile"
	if s.IsFragile {
		fragility = "fragile"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Provide clear, concise packing instructions for a shipment with this description: \"%s\".\n\n", s.Description)
	b.WriteString("Additional details:\n")
	fmt.Fprintf(&b, "- The item is %s\n", fragility)
	fmt.Fprintf(&b, "- Shipping method: %s\n", strings.ToLower(string(s.ShippingMethod)))
	fmt.Fprintf(&b, "- Distance: %s km\n", strconv.FormatFloat(s.DistanceKm, 'f', -1, 64))
	fmt.Fprintf(&b, "- Origin: %s\n", s.Origin)
	fmt.Fprintf(&b, "- Destination: %s\n\n", s.Destination)
	b.WriteString("Give the instructions as a well-formatted, bulleted list with specific, actionable advice. ")
	b.WriteString("Include recommendations for packaging materials, handling precautions, ")
	b.WriteString("and any special considerations based on the item's characteristics.")
	return b.String()
}
