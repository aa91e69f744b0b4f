package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ghuser/itemstore/pkg/auth"
	"github.com/ghuser/itemstore/pkg/logger"
	"github.com/ghuser/itemstore/services/item/application/dto"
)

const (
	// SeedCount is the number of rows inserted per seed run.
	SeedCount = 9

	seedDescription = "Some Test Item"
)

// seedPrincipal attributes seeded rows in the audit columns, so they are
// distinguishable from anonymous API writes.
var seedPrincipal = auth.Principal{ID: "seed"}

// Seeder inserts synthetic items through the same service/repository path the
// server uses. Every run inserts SeedCount fresh rows — there is deliberately
// no idempotence and no transaction around the batch.
type Seeder struct {
	svc *ItemService
	log logger.Logger
}

// NewSeeder returns a Seeder writing through svc.
func NewSeeder(svc *ItemService, log logger.Logger) *Seeder {
	return &Seeder{svc: svc, log: log}
}

// EpochSuffix derives the run's anti-collision suffix: the low-order four
// decimal digits of the millisecond timestamp. Best-effort only — two runs in
// the same millisecond produce colliding names (never colliding IDs).
func EpochSuffix(now time.Time) string {
	return fmt.Sprintf("%04d", now.UnixMilli()%10000)
}

// SeedDTOs builds the batch for one run: seed<epoch>-1 .. seed<epoch>-N with
// a fixed description.
func SeedDTOs(epoch string) []dto.ItemDTO {
	out := make([]dto.ItemDTO, 0, SeedCount)
	for i := 1; i <= SeedCount; i++ {
		out = append(out, dto.ItemDTO{
			Name:        fmt.Sprintf("seed%s-%d", epoch, i),
			Description: seedDescription,
		})
	}
	return out
}

// Run inserts one batch sequentially, logging each created row's name.
// The first failure aborts the run; rows already inserted stay inserted.
func (s *Seeder) Run(ctx context.Context) error {
	epoch := EpochSuffix(time.Now())
	s.log.Info("seeding items", "epoch", epoch, "count", SeedCount)

	for _, d := range SeedDTOs(epoch) {
		created, err := s.svc.Create(ctx, d, &seedPrincipal)
		if err != nil {
			return fmt.Errorf("seed %s: %w", d.Name, err)
		}
		s.log.InfoContext(ctx, "seeded item", "name", created.Name, "id", created.ID)
	}
	return nil
}
