// Package encounter provides the scripted first visits to points of interest.
package encounter

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mysterymachine/internal/entity"
	"github.com/samdwyer/mysterymachine/internal/logger"
	"github.com/samdwyer/mysterymachine/internal/telemetry"
	"github.com/samdwyer/mysterymachine/internal/world"
)

type script func(ctx context.Context, s *entity.Scene)

var scripts = map[world.LocationKind]script{
	world.ShoppingCentre: shoppingCentre,
	world.TradeWell:      tradeWell,
	world.MilitaryBase:   militaryBase,
}

// Run plays the encounter for kind. A script stops as soon as the party
// is wiped out. It panics if kind is world.None.
func Run(ctx context.Context, s *entity.Scene, kind world.LocationKind) {
	run, ok := scripts[kind]
	if !ok {
		panic(fmt.Sprintf("encounter: no script for %v", kind))
	}

	tracer := telemetry.Tracer("encounter")
	ctx, span := tracer.Start(ctx, "location.encounter")
	defer span.End()

	log := logger.Log.WithField("kind", kind.String())
	log.Info("Location encounter started")

	run(ctx, s)

	p := s.Party
	span.SetAttributes(
		attribute.String("kind", kind.String()),
		attribute.Int("members", len(p.Members)),
		attribute.Bool("extinct", p.Extinct()),
	)
	log.WithFields(logrus.Fields{
		"members":  len(p.Members),
		"ammo":     p.Ammo,
		"money":    p.Money,
		"food":     p.Food,
		"medicine": p.Medicine,
	}).Info("Location encounter finished")
}
