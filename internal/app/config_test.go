package app

import "testing"

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.HTTPAddr != ":8080" {
		t.Errorf("expected HTTPAddr :8080, got %s", cfg.HTTPAddr)
	}
	if cfg.OpsAddr != ":9090" {
		t.Errorf("expected OpsAddr :9090, got %s", cfg.OpsAddr)
	}
	if cfg.StorageDriver != StorageDriverMongo {
		t.Errorf("expected StorageDriver %s, got %s", StorageDriverMongo, cfg.StorageDriver)
	}
	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("expected default local mongo URI, got %s", cfg.MongoURI)
	}
	if cfg.MongoDatabase != "ecommerce" {
		t.Errorf("expected database ecommerce, got %s", cfg.MongoDatabase)
	}
	if len(cfg.KafkaBrokers) != 0 {
		t.Errorf("expected kafka to be disabled by default, got %v", cfg.KafkaBrokers)
	}
	if cfg.ShutdownTimeout <= 0 {
		t.Error("expected ShutdownTimeout to be > 0")
	}
}
