package config

import (
	"os"

	"bam-burgers-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Populated by Load. TenantID and BranchID scope every order row to the
// single configured location.
var (
	JWTSecret []byte
	TenantID  string
	BranchID  string
	AMQPURL   string
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads .env (if present) and environment variables. Called once at
// process start; there is no runtime reconfiguration.
func Load() {
	_ = godotenv.Load()

	JWTSecret = []byte(getEnv("JWT_SECRET", "bam_burgers_super_secret_2024"))
	TenantID = getEnv("TENANT_ID", "bam-burgers")
	BranchID = getEnv("BRANCH_ID", "kuwait-city")
	AMQPURL = os.Getenv("AMQP_URL") // optional; empty disables the AMQP fanout
}

func Port() string   { return getEnv("PORT", "8080") }
func DBPath() string { return getEnv("DB_PATH", "bam_burgers.db") }

// InitDB opens the store and migrates all tables.
func InitDB(log *zap.Logger) {
	var err error
	DB, err = gorm.Open(sqlite.Open(DBPath()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	err = DB.AutoMigrate(
		&models.AdminUser{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Coupon{},
		&models.CustomerLoyalty{},
		&models.LoyaltySettings{},
		&models.SettingsEntry{},
		&models.DailySequence{},
	)
	if err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}

	seedAdmin(log)
}

// seedAdmin creates the initial back-office account when none exists.
func seedAdmin(log *zap.Logger) {
	var count int64
	DB.Model(&models.AdminUser{}).Count(&count)
	if count > 0 {
		return
	}

	email := getEnv("ADMIN_EMAIL", "admin@bamburgers.com")
	password := getEnv("ADMIN_PASSWORD", "changeme")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("failed to hash admin password", zap.Error(err))
	}
	admin := models.AdminUser{
		Name:         "Admin",
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Fatal("failed to seed admin user", zap.Error(err))
	}
	log.Info("seeded initial admin user", zap.String("email", email))
}
