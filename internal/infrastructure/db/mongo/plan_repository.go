package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/orangeplan/user-management/internal/core/domain"
)

const (
	profileCollection     = "profiles"
	planCollection        = "tariff_plans"
	profilePlanCollection = "profile_plans"
)

// MongoPlanRepository stores the profile/tariff-plan reference catalog.
type MongoPlanRepository struct {
	profiles     *mongo.Collection
	plans        *mongo.Collection
	profilePlans *mongo.Collection
}

func NewPlanRepository(db *mongo.Database) *MongoPlanRepository {
	return &MongoPlanRepository{
		profiles:     db.Collection(profileCollection),
		plans:        db.Collection(planCollection),
		profilePlans: db.Collection(profilePlanCollection),
	}
}

type mongoNamed struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
}

type mongoProfilePlan struct {
	ProfileName string `bson:"profile_name"`
	PlanName    string `bson:"plan_name"`
}

func (r *MongoPlanRepository) ListProfiles(ctx context.Context) ([]*domain.Profile, error) {
	named, err := listNamed(ctx, r.profiles)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	profiles := make([]*domain.Profile, 0, len(named))
	for _, n := range named {
		profiles = append(profiles, &domain.Profile{ID: n.ID.Hex(), Name: n.Name})
	}
	return profiles, nil
}

func (r *MongoPlanRepository) ListPlans(ctx context.Context) ([]*domain.TariffPlan, error) {
	named, err := listNamed(ctx, r.plans)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	plans := make([]*domain.TariffPlan, 0, len(named))
	for _, n := range named {
		plans = append(plans, &domain.TariffPlan{ID: n.ID.Hex(), Name: n.Name})
	}
	return plans, nil
}

func (r *MongoPlanRepository) PlansForProfile(ctx context.Context, profileName string) ([]*domain.TariffPlan, error) {
	cursor, err := r.profilePlans.Find(ctx, bson.M{"profile_name": profileName})
	if err != nil {
		return nil, fmt.Errorf("plans for profile: %w", err)
	}
	defer cursor.Close(ctx)

	var names []string
	for cursor.Next(ctx) {
		var pp mongoProfilePlan
		if err := cursor.Decode(&pp); err != nil {
			return nil, fmt.Errorf("decode profile plan: %w", err)
		}
		names = append(names, pp.PlanName)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("plans for profile: %w", err)
	}
	if len(names) == 0 {
		return []*domain.TariffPlan{}, nil
	}

	planCursor, err := r.plans.Find(ctx, bson.M{"name": bson.M{"$in": names}})
	if err != nil {
		return nil, fmt.Errorf("plans for profile: %w", err)
	}
	defer planCursor.Close(ctx)

	var plans []*domain.TariffPlan
	for planCursor.Next(ctx) {
		var n mongoNamed
		if err := planCursor.Decode(&n); err != nil {
			return nil, fmt.Errorf("decode plan: %w", err)
		}
		plans = append(plans, &domain.TariffPlan{ID: n.ID.Hex(), Name: n.Name})
	}
	return plans, planCursor.Err()
}

// Seed upserts the catalog by name, so re-running the loader leaves existing
// entries untouched.
func (r *MongoPlanRepository) Seed(ctx context.Context, catalog domain.ProfilePlanCatalog) error {
	upsert := options.Update().SetUpsert(true)

	for _, name := range catalog.Profiles {
		filter := bson.M{"name": name}
		if _, err := r.profiles.UpdateOne(ctx, filter, bson.M{"$setOnInsert": filter}, upsert); err != nil {
			return fmt.Errorf("seed profile %q: %w", name, err)
		}
	}
	for _, name := range catalog.Plans {
		filter := bson.M{"name": name}
		if _, err := r.plans.UpdateOne(ctx, filter, bson.M{"$setOnInsert": filter}, upsert); err != nil {
			return fmt.Errorf("seed plan %q: %w", name, err)
		}
	}
	for profile, plans := range catalog.PlansByProfile {
		for _, plan := range plans {
			filter := bson.M{"profile_name": profile, "plan_name": plan}
			if _, err := r.profilePlans.UpdateOne(ctx, filter, bson.M{"$setOnInsert": filter}, upsert); err != nil {
				return fmt.Errorf("seed profile plan %q/%q: %w", profile, plan, err)
			}
		}
	}
	return nil
}

func listNamed(ctx context.Context, coll *mongo.Collection) ([]mongoNamed, error) {
	cursor, err := coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []mongoNamed
	for cursor.Next(ctx) {
		var n mongoNamed
		if err := cursor.Decode(&n); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, cursor.Err()
}
