package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lmartins/servicofacil/internal/models"
	"github.com/lmartins/servicofacil/internal/repository"
	"github.com/lmartins/servicofacil/internal/store"
)

func TestParseServicePatch(t *testing.T) {
	patch, err := parseServicePatch("Instalação | Tomadas e quadros | 1 | 150 | 2h")
	require.NoError(t, err)
	require.NotNil(t, patch.Name)
	assert.Equal(t, "Instalação", *patch.Name)
	require.NotNil(t, patch.Description)
	assert.Equal(t, "Tomadas e quadros", *patch.Description)
	require.NotNil(t, patch.Type)
	assert.Equal(t, models.Electrician, *patch.Type)
	require.NotNil(t, patch.Price)
	assert.Equal(t, "150", *patch.Price)
	require.NotNil(t, patch.EstimatedTime)
	assert.Equal(t, "2h", *patch.EstimatedTime)

	// empty segments leave the corresponding fields nil
	patch, err = parseServicePatch(" | Novo texto")
	require.NoError(t, err)
	assert.Nil(t, patch.Name)
	require.NotNil(t, patch.Description)
	assert.Equal(t, "Novo texto", *patch.Description)
	assert.Nil(t, patch.Type)
	assert.Nil(t, patch.Price)

	_, err = parseServicePatch("x | y | abc")
	assert.Error(t, err)

	_, err = parseServicePatch("   ")
	assert.Error(t, err)
}

func TestEditServiceUpdatesRepository(t *testing.T) {
	repo := repository.New(store.NewMemStore(), zap.NewNop())
	ctx := context.Background()

	created, err := repo.CreateProviderService(ctx, repository.ProviderServiceInput{
		Name:        "Instalação Elétrica",
		Description: "Completa",
		Type:        models.Electrician,
		Price:       "150",
	})
	require.NoError(t, err)

	editService(ctx, repo, created.ID, "| Residencial e comercial | | 200")

	services, err := repo.ListProviderServices(ctx)
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "Instalação Elétrica", services[0].Name)
	assert.Equal(t, "Residencial e comercial", services[0].Description)
	assert.Equal(t, "200", services[0].Price)
}
