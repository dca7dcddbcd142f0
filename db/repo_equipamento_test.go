package db

import (
	"context"
	"testing"
	"time"

	"protechub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUpdateEquipamento_TravaDeQuantidade(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	e := seedEquipamento(t, r, "Capacete MSA", 10, 4)

	in := UpdateEquipamentoInput{
		Nome:      e.Nome,
		Categoria: e.Categoria,
		Validade:  e.Validade,
	}

	// total=3 deixaria a disponibilidade em -1: rejeita e não grava nada
	in.QuantidadeTotal = 3
	_, err := r.UpdateEquipamento(ctx, e.Slug, in)
	assert.ErrorIs(t, err, ErrQuantidadeConflito)

	got, err := r.FindEquipamentoBySlug(ctx, e.Slug)
	require.NoError(t, err)
	assert.Equal(t, 10, got.QuantidadeTotal)
	assert.Equal(t, 4, got.QuantidadeEmprestada)

	// total=5 ainda deixa 1 disponível: aceita
	in.QuantidadeTotal = 5
	out, err := r.UpdateEquipamento(ctx, e.Slug, in)
	require.NoError(t, err)
	assert.Equal(t, 5, out.QuantidadeTotal)
	assert.Equal(t, 1, out.QuantidadeDisponivel())
}

func TestUpdateEquipamento_NotFound(t *testing.T) {
	r := newTestRepo(t)
	_, err := r.UpdateEquipamento(context.Background(), "nao-existe", UpdateEquipamentoInput{
		Nome:            "x",
		Categoria:       models.CategoriaLuvas,
		Validade:        time.Now(),
		QuantidadeTotal: 1,
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListEquipamentos_BuscaPorSubstring(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	seedEquipamento(t, r, "Equipamento X", 1, 0)
	seedEquipamento(t, r, "Outro Y", 1, 0)

	es, err := r.ListEquipamentos(ctx, "equip")
	require.NoError(t, err)
	require.Len(t, es, 1)
	assert.Equal(t, "Equipamento X", es[0].Nome)

	// sem busca devolve tudo
	es, err = r.ListEquipamentos(ctx, "")
	require.NoError(t, err)
	assert.Len(t, es, 2)

	// maiúsculas não importam
	es, err = r.ListEquipamentos(ctx, "OUTRO")
	require.NoError(t, err)
	require.Len(t, es, 1)
	assert.Equal(t, "Outro Y", es[0].Nome)
}

func TestDeleteEquipamento(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	e := seedEquipamento(t, r, "Botina", 2, 0)

	// slug desconhecido: NotFound e a coleção não muda
	err := r.DeleteEquipamentoBySlug(ctx, "nao-existe")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var n int64
	require.NoError(t, r.DB.Model(&models.Equipamento{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)

	require.NoError(t, r.DeleteEquipamentoBySlug(ctx, e.Slug))
	_, err = r.FindEquipamentoBySlug(ctx, e.Slug)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestQuantidadeDisponivelDerivada(t *testing.T) {
	e := models.Equipamento{QuantidadeTotal: 7, QuantidadeEmprestada: 3}
	assert.Equal(t, 4, e.QuantidadeDisponivel())
}
