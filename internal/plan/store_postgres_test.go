package plan_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/lawrencedcodes/pathways/internal/plan"
	"github.com/lawrencedcodes/pathways/internal/platform/database"
)

// startPostgres spins up a throwaway PostgreSQL container with the project
// schema applied and returns a connected pool.
func startPostgres(t *testing.T) *database.DB {
	t.Helper()

	ctx := context.Background()
	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("pathways"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("starting postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := ctr.Terminate(context.Background()); err != nil {
			t.Logf("terminating container: %v", err)
		}
	})

	connStr, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("container connection string: %v", err)
	}

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	db, err := database.New(connectCtx, connStr, 5, 1)
	if err != nil {
		t.Fatalf("connecting to container: %v", err)
	}
	t.Cleanup(db.Close)

	ddl, err := os.ReadFile("../../scripts/schema.sql")
	if err != nil {
		t.Fatalf("reading schema: %v", err)
	}
	if err := db.ApplySchema(ctx, string(ddl)); err != nil {
		t.Fatalf("applying schema: %v", err)
	}
	return db
}

func TestPostgresStore_CreateAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	db := startPostgres(t)
	store, err := plan.NewPostgresStore(db.Pool)
	if err != nil {
		t.Fatalf("NewPostgresStore() error = %v", err)
	}
	gen := newTestGenerator()

	created, err := store.CreatePlan(gen.Generate(1, 101, "Frontend Developer"))
	if err != nil {
		t.Fatalf("CreatePlan() error = %v", err)
	}
	if created.ID == 0 {
		t.Fatal("created plan has no ID")
	}

	got, err := store.GetPlan(created.ID)
	if err != nil {
		t.Fatalf("GetPlan() error = %v", err)
	}
	if got.CareerTitle != "Frontend Developer" {
		t.Errorf("CareerTitle = %q", got.CareerTitle)
	}
	if len(got.Milestones) != 5 {
		t.Fatalf("got %d milestones, want 5", len(got.Milestones))
	}
	for i, m := range got.Milestones {
		if m.OrderIndex != i+1 {
			t.Errorf("milestone %d OrderIndex = %d", i, m.OrderIndex)
		}
		if len(m.Tasks) != 4 {
			t.Errorf("milestone %q has %d tasks, want 4", m.Title, len(m.Tasks))
		}
	}
}

func TestPostgresStore_CompleteTaskUpdatesProgress(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	db := startPostgres(t)
	store, err := plan.NewPostgresStore(db.Pool)
	if err != nil {
		t.Fatalf("NewPostgresStore() error = %v", err)
	}
	gen := newTestGenerator()

	created, err := store.CreatePlan(gen.Generate(1, 101, "Backend Developer"))
	if err != nil {
		t.Fatalf("CreatePlan() error = %v", err)
	}

	for _, task := range created.Milestones[0].Tasks {
		if _, err := store.CompleteTask(created.ID, task.ID); err != nil {
			t.Fatalf("CompleteTask() error = %v", err)
		}
	}

	got, err := store.GetPlan(created.ID)
	if err != nil {
		t.Fatalf("GetPlan() error = %v", err)
	}
	if got.ProgressPercentage != 20 {
		t.Errorf("ProgressPercentage = %d, want 20", got.ProgressPercentage)
	}
	if !got.Milestones[0].Completed {
		t.Error("first milestone should be completed")
	}

	if _, err := store.CompleteTask(created.ID, 987654); err == nil {
		t.Error("CompleteTask() should fail for an unknown task")
	}
}

func TestPostgresStore_ListForUser(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	db := startPostgres(t)
	store, err := plan.NewPostgresStore(db.Pool)
	if err != nil {
		t.Fatalf("NewPostgresStore() error = %v", err)
	}
	gen := newTestGenerator()

	if _, err := store.CreatePlan(gen.Generate(1, 101, "Frontend Developer")); err != nil {
		t.Fatalf("CreatePlan() error = %v", err)
	}
	if _, err := store.CreatePlan(gen.Generate(2, 102, "Data Scientist")); err != nil {
		t.Fatalf("CreatePlan() error = %v", err)
	}

	plans, err := store.ListForUser(1)
	if err != nil {
		t.Fatalf("ListForUser() error = %v", err)
	}
	if len(plans) != 1 || plans[0].UserID != 1 {
		t.Errorf("ListForUser(1) = %+v, want exactly the user's plan", plans)
	}
}
