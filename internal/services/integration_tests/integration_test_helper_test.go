package integration_tests

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"job-board-api/ent"
	"job-board-api/internal/models"
	"job-board-api/internal/storage/postgres"
	"job-board-api/internal/transport/dto"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// Helper to create a pointer to a float64
func ptrFloat64(f float64) *float64 { return &f }

var testDB *ent.Client
var testRedisClient *redis.Client

// getTestClients establishes a connection to the test database. It reads the
// DSN from the TEST_DATABASE_URL environment variable and skips the calling
// test when it is not set.
func getTestClients(t *testing.T) (*ent.Client, *redis.Client) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL environment variable not set; skipping integration test")
	}

	if testDB == nil {
		db, err := sql.Open("pgx", dsn)
		require.NoError(t, err, "Failed to open test database connection")

		entDriver := entsql.OpenDB(dialect.Postgres, db)
		testDB = ent.NewClient(ent.Driver(entDriver))

		runMigrations(t)
	}

	// --- Redis Setup ---
	if testRedisClient == nil {
		redisAddr := os.Getenv("TEST_REDIS_URL")
		if redisAddr == "" {
			log.Println("WARN: TEST_REDIS_URL not set. Redis-dependent tests will be skipped.")
		} else {
			rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
			ctxRedis, cancelRedis := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancelRedis()
			if err := rdb.Ping(ctxRedis).Err(); err != nil {
				log.Printf("WARN: Failed to connect to test Redis at %s: %v. Redis-dependent tests will be skipped.", redisAddr, err)
			} else {
				testRedisClient = rdb
			}
		}
	}
	return testDB, testRedisClient
}

// runMigrations creates the schema on the test database.
func runMigrations(t *testing.T) {
	t.Helper()

	err := testDB.Schema.Create(context.Background())
	require.NoError(t, err)
	log.Println("Ent client connected and schema created/checked.")
}

// cleanupTables clears specified tables for test isolation. Order matters:
// applications before jobs, jobs before profiles, profiles before users.
func cleanupTables(ctx context.Context, t *testing.T, client *ent.Client, tables ...string) {
	t.Helper()
	if len(tables) == 0 {
		return
	}

	for _, table := range tables {
		switch table {
		case "job_application":
			_, err := client.JobApplication.Delete().Exec(ctx)
			require.NoError(t, err, "Failed to clear job_application table")
		case "jobs":
			_, err := client.Job.Delete().Exec(ctx)
			require.NoError(t, err, "Failed to clear jobs table")
		case "employer_profile":
			_, err := client.EmployerProfile.Delete().Exec(ctx)
			require.NoError(t, err, "Failed to clear employer_profile table")
		case "users":
			_, err := client.User.Delete().Exec(ctx)
			require.NoError(t, err, "Failed to clear users table")
		default:
		}
	}
	log.Printf("Cleaned tables: %s", strings.Join(tables, ", "))
}

// cleanupRedis flushes the test Redis database. Use with caution!
func cleanupRedis(t *testing.T, client *redis.Client) {
	t.Helper()
	if client == nil {
		return
	}
	err := client.FlushDB(context.Background()).Err()
	require.NoError(t, err, "Failed to flush test Redis database")
}

// createTestUser inserts a user row directly through the repository.
func createTestUser(t *testing.T, ctx context.Context, client *ent.Client, email string, role models.Role) *models.User {
	t.Helper()
	userRepo := postgres.NewUserRepo(client)
	user, err := userRepo.Create(ctx, &dto.CreateUserRequest{
		Email:        email,
		PasswordHash: "$2a$04$integrationtesthashplaceholder0000000000000000000000",
		Role:         role,
	})
	require.NoError(t, err, "Failed to create test user %s", email)
	require.NotNil(t, user)
	return user
}

// createTestEmployer inserts a user with an employer profile and returns both.
func createTestEmployer(t *testing.T, ctx context.Context, client *ent.Client, email, company string) (*models.User, *models.EmployerProfile) {
	t.Helper()
	user := createTestUser(t, ctx, client, email, models.RoleEmployer)
	profileRepo := postgres.NewEmployerProfileRepo(client)
	profile, err := profileRepo.Create(ctx, &dto.CreateEmployerProfileRequest{
		UserID:      user.ID,
		CompanyName: company,
	})
	require.NoError(t, err, "Failed to create employer profile for %s", email)
	require.NotNil(t, profile)
	return user, profile
}

// createTestJob inserts a job owned by the given employer profile.
func createTestJob(t *testing.T, ctx context.Context, client *ent.Client, employerID uuid.UUID, title string, active bool) *models.Job {
	t.Helper()
	jobRepo := postgres.NewJobRepo(client)
	job, err := jobRepo.Create(ctx, &dto.CreateJobRequest{
		Title:       title,
		Description: "Integration test posting",
		Location:    "Remote",
		SalaryMin:   ptrFloat64(40000),
		SalaryMax:   ptrFloat64(60000),
		EmployerID:  employerID,
	})
	require.NoError(t, err, "Failed to create test job for employer %s", employerID)
	require.NotNil(t, job)

	if !active {
		job, err = jobRepo.SetActive(ctx, job.ID, false)
		require.NoError(t, err, "Failed to deactivate test job")
	}
	return job
}
