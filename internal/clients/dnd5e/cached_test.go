package dnd5e_test

import (
	"errors"
	"testing"

	"github.com/KirkDiggler/dnd-combat-tracker/internal/clients/dnd5e"
	mockdnd5e "github.com/KirkDiggler/dnd-combat-tracker/internal/clients/dnd5e/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCachedClient_GetMonster(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockdnd5e.NewMockClient(ctrl)
	mock.EXPECT().GetMonster("goblin").Return(goblin(), nil).Times(1)

	client := dnd5e.NewCachedClient(mock)

	first, err := client.GetMonster("goblin")
	require.NoError(t, err)
	second, err := client.GetMonster("goblin")
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestCachedClient_ErrorsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockdnd5e.NewMockClient(ctrl)
	gomock.InOrder(
		mock.EXPECT().GetMonster("orc").Return(nil, errors.New("timeout")),
		mock.EXPECT().GetMonster("orc").Return(&dnd5e.Monster{Key: "orc", Name: "Orc"}, nil),
	)

	client := dnd5e.NewCachedClient(mock)

	_, err := client.GetMonster("orc")
	require.Error(t, err)

	monster, err := client.GetMonster("orc")
	require.NoError(t, err)
	assert.Equal(t, "Orc", monster.Name)
}
