package app

import "time"

// StorageDriver выбирает реализацию хранилища.
type StorageDriver string

const (
	// StorageDriverMemory — in-memory хранилище для локальной разработки.
	StorageDriverMemory StorageDriver = "memory"
	// StorageDriverMongo — документное хранилище MongoDB.
	StorageDriverMongo StorageDriver = "mongo"
)

// Config описывает настройки запуска приложения.
type Config struct {
	// HTTPAddr — адрес основного API.
	HTTPAddr string
	// OpsAddr — адрес служебного HTTP: метрики и health checks.
	OpsAddr string
	// StorageDriver выбирает хранилище: mongo или memory.
	StorageDriver StorageDriver
	// MongoURI — строка подключения к MongoDB.
	MongoURI string
	// MongoDatabase — имя базы данных сервиса.
	MongoDatabase string
	// KafkaBrokers — адреса брокеров; пустой список отключает публикацию событий.
	KafkaBrokers []string
	// ShutdownTimeout ограничивает время graceful shutdown.
	ShutdownTimeout time.Duration
}

// DefaultConfig возвращает конфигурацию по умолчанию: MongoDB на
// стандартном порту локального инстанса.
func DefaultConfig() Config {
	return Config{
		HTTPAddr:        ":8080",
		OpsAddr:         ":9090",
		StorageDriver:   StorageDriverMongo,
		MongoURI:        "mongodb://localhost:27017",
		MongoDatabase:   "ecommerce",
		ShutdownTimeout: 5 * time.Second,
	}
}
