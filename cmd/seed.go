package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/m04kA/WeddingSalon-BookingService/internal/config"
	"github.com/m04kA/WeddingSalon-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/WeddingSalon-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/WeddingSalon-BookingService/pkg/dbmetrics"
	"github.com/m04kA/WeddingSalon-BookingService/pkg/txmanager"
	"github.com/m04kA/WeddingSalon-BookingService/pkg/types"
)

func newSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert sample bookings into PostgreSQL",
		Long:  "Insert two sample bookings a week and two weeks from today. All rows are written in one transaction.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd.Context(), *configPath)
		},
	}
}

func runSeed(ctx context.Context, configPath string) error {
	cfg, log, err := bootstrap(configPath)
	if err != nil {
		return err
	}
	defer log.Close()

	if cfg.Storage.Driver != config.StoragePostgres {
		return errors.New("seed requires storage.driver = \"postgres\"")
	}

	db, err := openPostgres(cfg.Database, log)
	if err != nil {
		return err
	}
	defer db.Close()

	loc, err := cfg.Booking.Location()
	if err != nil {
		return err
	}

	wrapped := dbmetrics.Wrap(db, nil)
	repo := bookingRepo.NewRepository(wrapped, time.Duration(cfg.Database.QueryTimeout)*time.Second)
	txm := txmanager.NewTransactionManager(wrapped)

	samples := sampleBookings(types.DateOf(time.Now().In(loc)), uuid.NewString)

	err = txm.Do(ctx, func(ctx context.Context) error {
		for _, b := range samples {
			if _, err := repo.Create(ctx, b); err != nil {
				if errors.Is(err, bookingRepo.ErrSlotTaken) {
					return fmt.Errorf("%s %s is already booked: %w", b.BookingDate, b.TimeSlot, err)
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error("Seed: failed, nothing was inserted: %v", err)
		return err
	}

	for _, b := range samples {
		log.Info("Seed: inserted booking id=%s date=%s slot=%s status=%s", b.ID, b.BookingDate, b.TimeSlot, b.Status)
	}
	return nil
}

func sampleBookings(today types.Date, newID func() string) []*domain.Booking {
	return []*domain.Booking{
		{
			ID:              newID(),
			CustomerName:    "John Doe",
			Email:           "john@example.com",
			Phone:           "123-456-7890",
			EventType:       "Wedding",
			GuestCount:      100,
			SpecialRequests: "Need vegetarian options",
			BookingDate:     today.AddDays(7),
			TimeSlot:        domain.SlotMorning,
			Status:          domain.StatusPending,
		},
		{
			ID:              newID(),
			CustomerName:    "Jane Smith",
			Email:           "jane@example.com",
			Phone:           "098-765-4321",
			EventType:       "Anniversary",
			GuestCount:      50,
			SpecialRequests: "Decoration in blue theme",
			BookingDate:     today.AddDays(14),
			TimeSlot:        domain.SlotEvening,
			Status:          domain.StatusConfirmed,
		},
	}
}
