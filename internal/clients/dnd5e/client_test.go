package dnd5e

import (
	"errors"
	"testing"

	dnderr "github.com/KirkDiggler/dnd-dice-bot/internal/errors"
	apiEntities "github.com/fadedpez/dnd5e-api/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAPI struct {
	classes map[string]*apiEntities.Class
	refs    []*apiEntities.ReferenceItem
	err     error
	asked   []string
}

func (s *stubAPI) ListClasses() ([]*apiEntities.ReferenceItem, error) {
	return s.refs, s.err
}

func (s *stubAPI) GetClass(key string) (*apiEntities.Class, error) {
	s.asked = append(s.asked, key)
	if s.err != nil {
		return nil, s.err
	}
	return s.classes[key], nil
}

func TestClient_GetClass(t *testing.T) {
	api := &stubAPI{classes: map[string]*apiEntities.Class{
		"fighter":      {Key: "fighter", Name: "Fighter", HitDie: 10},
		"blood-hunter": {Key: "blood-hunter", HitDie: 10},
	}}
	c := newClient(api)

	class, err := c.GetClass(" Fighter ")
	require.NoError(t, err)
	assert.Equal(t, &Class{Key: "fighter", Name: "Fighter", HitDie: 10}, class)
	assert.Equal(t, []string{"fighter"}, api.asked)

	class, err = c.GetClass("blood-hunter")
	require.NoError(t, err)
	assert.Equal(t, "Blood Hunter", class.Name)
}

func TestClient_GetClass_Errors(t *testing.T) {
	c := newClient(&stubAPI{classes: map[string]*apiEntities.Class{}})

	_, err := c.GetClass("")
	assert.True(t, dnderr.IsInvalidArgument(err))

	_, err = c.GetClass("bard")
	assert.True(t, dnderr.IsNotFound(err))

	c = newClient(&stubAPI{err: errors.New("timeout")})
	_, err = c.GetClass("bard")
	assert.Equal(t, dnderr.CodeUnavailable, dnderr.GetCode(err))
	assert.Equal(t, "bard", dnderr.GetMeta(err)["class"])
}

func TestClient_ListClasses(t *testing.T) {
	c := newClient(&stubAPI{refs: []*apiEntities.ReferenceItem{
		{Key: "wizard", Name: "Wizard"},
		nil,
		{Key: "rogue"},
	}})

	classes, err := c.ListClasses()
	require.NoError(t, err)
	assert.Equal(t, []*Class{
		{Key: "wizard", Name: "Wizard"},
		{Key: "rogue", Name: "Rogue"},
	}, classes)
}

func TestNew_RequiresConfig(t *testing.T) {
	_, err := New(nil)
	assert.True(t, dnderr.IsInvalidArgument(err))
}
