package update

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sandeepkv93/taskdash/internal/board"
	"github.com/sandeepkv93/taskdash/internal/model"
	"github.com/sandeepkv93/taskdash/internal/store"
)

const (
	IDStrategySequence = "sequence"
	IDStrategyUUID     = "uuid"
)

type RuntimeConfig struct {
	Filter     string `validate:"oneof=All Active Completed"`
	Sort       string `validate:"oneof=priority dueDate"`
	Seed       bool
	IDStrategy string `validate:"oneof=sequence uuid"`
	LogFile    string
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		Filter:     string(model.FilterAll),
		Sort:       string(model.SortByPriority),
		Seed:       true,
		IDStrategy: IDStrategySequence,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("TASKDASH_FILTER"); ok {
		cfg.Filter = v
	}
	if v, ok := getEnvString("TASKDASH_SORT"); ok {
		cfg.Sort = v
	}
	if v, ok := getEnvBool("TASKDASH_SEED"); ok {
		cfg.Seed = v
	}
	if v, ok := getEnvString("TASKDASH_ID_STRATEGY"); ok {
		cfg.IDStrategy = v
	}
	if v, ok := getEnvString("TASKDASH_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	return cfg.Normalize()
}

// Normalize maps accepted spellings onto their canonical form. Values that
// cannot be parsed are left untouched so Validate reports them.
func (c RuntimeConfig) Normalize() RuntimeConfig {
	if f, err := model.ParseFilter(c.Filter); err == nil {
		c.Filter = string(f)
	}
	if k, err := model.ParseSortKey(c.Sort); err == nil {
		c.Sort = string(k)
	}
	c.IDStrategy = strings.ToLower(strings.TrimSpace(c.IDStrategy))
	return c
}

func (c RuntimeConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			fe := errs[0]
			return fmt.Errorf("config: invalid %s %q (want one of: %s)", strings.ToLower(fe.Field()), fe.Value(), fe.Param())
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func (c RuntimeConfig) IDGenerator() store.IDGenerator {
	if c.IDStrategy == IDStrategyUUID {
		return store.UUIDs{}
	}
	return store.NewSequence(1)
}

func NewBoardFromConfig(cfg RuntimeConfig) (*board.Board, error) {
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var seed []model.Task
	if cfg.Seed {
		seed = model.SampleTasks()
	}
	b := board.New(store.New(cfg.IDGenerator(), seed...))
	b.SetFilter(model.Filter(cfg.Filter))
	b.SetSortKey(model.SortKey(cfg.Sort))
	return b, nil
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
