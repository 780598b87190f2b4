package settings

import (
	"encoding/json"
	"errors"
	"fmt"

	"bam-burgers-api/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrConfirmRequired = errors.New("switching to real mode is destructive and requires confirmation")

// Service reads and writes the keyed settings blocks.
type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewService(db *gorm.DB, log *zap.Logger) *Service {
	return &Service{db: db, log: log}
}

// get loads a key into out, provisioning the default row on first access.
func (s *Service) get(key string, out any, def any) error {
	var entry models.SettingsEntry
	err := s.db.Where("key = ?", key).First(&entry).Error
	if err == gorm.ErrRecordNotFound {
		raw, merr := json.Marshal(def)
		if merr != nil {
			return merr
		}
		entry = models.SettingsEntry{Key: key, Value: string(raw)}
		if cerr := s.db.Create(&entry).Error; cerr != nil {
			return cerr
		}
		return json.Unmarshal(raw, out)
	}
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(entry.Value), out)
}

func (s *Service) save(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	entry := models.SettingsEntry{Key: key, Value: string(raw)}
	return s.db.Save(&entry).Error
}

func (s *Service) Restaurant() (Restaurant, error) {
	var v Restaurant
	err := s.get(KeyRestaurant, &v, defaultRestaurant())
	return v, err
}

func (s *Service) SaveRestaurant(v Restaurant) error { return s.save(KeyRestaurant, v) }

func (s *Service) Delivery() (Delivery, error) {
	var v Delivery
	err := s.get(KeyDelivery, &v, defaultDelivery())
	return v, err
}

func (s *Service) SaveDelivery(v Delivery) error { return s.save(KeyDelivery, v) }

func (s *Service) Payment() (Payment, error) {
	var v Payment
	err := s.get(KeyPayment, &v, defaultPayment())
	return v, err
}

func (s *Service) SavePayment(v Payment) error { return s.save(KeyPayment, v) }

func (s *Service) Notifications() (Notifications, error) {
	var v Notifications
	err := s.get(KeyNotifications, &v, defaultNotifications())
	return v, err
}

func (s *Service) SaveNotifications(v Notifications) error { return s.save(KeyNotifications, v) }

func (s *Service) Website() (Website, error) {
	var v Website
	err := s.get(KeyWebsite, &v, defaultWebsite())
	return v, err
}

func (s *Service) SaveWebsite(v Website) error { return s.save(KeyWebsite, v) }

func (s *Service) Providers() ([]Provider, error) {
	var v []Provider
	err := s.get(KeyDeliveryProviders, &v, defaultProviders())
	return v, err
}

func (s *Service) SaveProviders(v []Provider) error { return s.save(KeyDeliveryProviders, v) }

func (s *Service) Mode() (Mode, error) {
	var v adminMode
	err := s.get(KeyAdminMode, &v, adminMode{Mode: ModeMock})
	if v.Mode == "" {
		v.Mode = ModeMock
	}
	return v.Mode, err
}

// SwitchMode changes the operating mode. Switching to real mode wipes all
// orders, coupons and loyalty records (menu items are preserved). The wipe
// is irreversible, so it is gated behind an explicit confirm flag.
// Switching back to mock does not restore anything.
func (s *Service) SwitchMode(target Mode, confirm bool) error {
	if target != ModeMock && target != ModeReal {
		return fmt.Errorf("unknown admin mode %q", target)
	}

	if target == ModeReal {
		if !confirm {
			return ErrConfirmRequired
		}
		err := s.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("1 = 1").Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("1 = 1").Delete(&models.Order{}).Error; err != nil {
				return err
			}
			if err := tx.Where("1 = 1").Delete(&models.Coupon{}).Error; err != nil {
				return err
			}
			if err := tx.Where("1 = 1").Delete(&models.CustomerLoyalty{}).Error; err != nil {
				return err
			}
			return nil
		})
		if err != nil {
			return err
		}
		s.log.Warn("switched to real mode, mock data wiped")
	}

	return s.save(KeyAdminMode, adminMode{Mode: target})
}
