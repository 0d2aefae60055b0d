package dnd5e

import (
	"net/http"
	"strings"

	dnderr "github.com/KirkDiggler/dnd-dice-bot/internal/errors"
	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apiEntities "github.com/fadedpez/dnd5e-api/entities"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// classAPI is the subset of the upstream API client used here
type classAPI interface {
	ListClasses() ([]*apiEntities.ReferenceItem, error)
	GetClass(key string) (*apiEntities.Class, error)
}

// TODO: add context to functions once the upstream client accepts one
type client struct {
	api   classAPI
	title cases.Caser
}

type Config struct {
	HttpClient *http.Client
}

func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("dnd5e client config is required")
	}

	api, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client: cfg.HttpClient,
	})
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to create dnd5e api client")
	}

	return newClient(api), nil
}

func newClient(api classAPI) *client {
	return &client{
		api:   api,
		title: cases.Title(language.English),
	}
}

func (c *client) ListClasses() ([]*Class, error) {
	response, err := c.api.ListClasses()
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to list classes")
	}

	classes := make([]*Class, 0, len(response))
	for _, item := range response {
		if item == nil {
			continue
		}
		classes = append(classes, &Class{Key: item.Key, Name: c.displayName(item.Key, item.Name)})
	}
	return classes, nil
}

func (c *client) GetClass(key string) (*Class, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return nil, dnderr.InvalidArgument("class key is required")
	}

	response, err := c.api.GetClass(key)
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to get class").
			WithMeta("class", key)
	}
	if response == nil || response.HitDie < 1 {
		return nil, dnderr.NotFoundf("class '%s' not found", key).
			WithMeta("class", key)
	}

	return &Class{
		Key:    key,
		Name:   c.displayName(key, response.Name),
		HitDie: response.HitDie,
	}, nil
}

// displayName falls back to the title-cased key when the API omits a name
func (c *client) displayName(key, name string) string {
	if name != "" {
		return name
	}
	return c.title.String(strings.ReplaceAll(key, "-", " "))
}
