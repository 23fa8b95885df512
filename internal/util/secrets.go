package util

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type Secrets struct {
	ChatGPTApiKey string        `json:"gpt"`
	Jwt           string        `json:"jwt"`
	Db            DbSecrets     `json:"db"`
	Redis         RedisSecrets  `json:"redis"`
	SummaryTTL    time.Duration `json:"-"`
}

type DbSecrets struct {
	Host      string `json:"host"`
	User      string `json:"user"`
	Port      string `json:"port"`
	Password  string `json:"password"`
	Database  string `json:"database"`
	EnableSsl bool   `json:"enableSsl"`
}

func (t DbSecrets) ToConnectionStr() string {
	x := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		t.Host, t.Port, t.User, t.Password, t.Database)
	if !t.EnableSsl {
		x += " sslmode=disable"
	}
	return x
}

type RedisSecrets struct {
	Addr     string `json:"addr"`
	Password string `json:"password"`
	DB       int    `json:"db"`
}

// summaries go stale after an hour; callers re-trigger computation to see
// newer lots sooner
const defaultSummaryTTL = time.Hour

func LoadSecrets() (*Secrets, error) {
	secretsFile := "/go/src/app/secrets.json"
	if os.Getenv("STOCKFOLIO_ENV") == "dev" {
		secretsFile = "secrets-dev.json"
	} else if os.Getenv("STOCKFOLIO_ENV") == "test" {
		secretsFile = "secrets-test.json"
	}
	f, err := os.ReadFile(secretsFile)
	if err != nil {
		return nil, fmt.Errorf("could not open secrets.json: %w", err)
	}

	secrets := Secrets{}
	err = json.Unmarshal(f, &secrets)
	if err != nil {
		return nil, err
	}
	secrets.SummaryTTL = defaultSummaryTTL

	return &secrets, nil
}
