// File: database/repository/pricing/pricing.go
package pricingRepo

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"lakehouse/database"
	"lakehouse/models"
)

// Repository covers pricing tiers and the per-season unit pricing matrix.
type Repository interface {
	ListTiers(ctx context.Context) (map[string]models.PricingTier, error)
	SaveTier(ctx context.Context, tier models.PricingTier) error
	ListUnitPricing(ctx context.Context, year int) (models.UnitPricingMap, error)
	SaveUnitPricing(ctx context.Context, pricing models.UnitPricing) error
}

type firestorePricingRepo struct {
	tiers       *firestore.CollectionRef
	unitPricing *firestore.CollectionRef
}

// NewFirestorePricingRepo constructs a Repository over the "pricingTiers"
// and "unitPricing" collections.
func NewFirestorePricingRepo() Repository {
	return &firestorePricingRepo{
		tiers:       database.Client.Collection("pricingTiers"),
		unitPricing: database.Client.Collection("unitPricing"),
	}
}

func (r *firestorePricingRepo) ListTiers(ctx context.Context) (map[string]models.PricingTier, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	iter := r.tiers.Documents(ctx)
	defer iter.Stop()

	tiers := map[string]models.PricingTier{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var tier models.PricingTier
		if err := snap.DataTo(&tier); err != nil {
			return nil, err
		}
		tier.ID = snap.Ref.ID
		tiers[tier.ID] = tier
	}
	return tiers, nil
}

func (r *firestorePricingRepo) SaveTier(ctx context.Context, tier models.PricingTier) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if tier.ID == "" {
		_, _, err := r.tiers.Add(ctx, tier)
		return err
	}
	_, err := r.tiers.Doc(tier.ID).Set(ctx, tier)
	return err
}

func (r *firestorePricingRepo) ListUnitPricing(ctx context.Context, year int) (models.UnitPricingMap, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	iter := r.unitPricing.Where("year", "==", year).Documents(ctx)
	defer iter.Stop()

	pricing := models.UnitPricingMap{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var up models.UnitPricing
		if err := snap.DataTo(&up); err != nil {
			return nil, err
		}
		pricing[up.UnitID] = append(pricing[up.UnitID], up)
	}
	return pricing, nil
}

func (r *firestorePricingRepo) SaveUnitPricing(ctx context.Context, pricing models.UnitPricing) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// One document per (year, tier, unit) triple; replace if present.
	iter := r.unitPricing.
		Where("year", "==", pricing.Year).
		Where("tierId", "==", pricing.TierID).
		Where("unitId", "==", pricing.UnitID).
		Limit(1).Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		_, _, err = r.unitPricing.Add(ctx, pricing)
		return err
	}
	if err != nil {
		return err
	}
	_, err = snap.Ref.Set(ctx, pricing)
	return err
}
