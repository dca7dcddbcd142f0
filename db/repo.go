package db

import (
	"errors"

	"gorm.io/gorm"
)

type Repo struct{ DB *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{DB: db} }

// Erros de negócio devolvidos pelos repositórios. "Não encontrado" é o
// gorm.ErrRecordNotFound de sempre.
var (
	// A nova quantidade total deixaria a disponibilidade negativa.
	ErrQuantidadeConflito = errors.New("quantidade total menor que a quantidade emprestada")
	// Empréstimo pede mais unidades do que há disponível.
	ErrSemDisponibilidade = errors.New("sem quantidade disponível suficiente")
)

func IsNotFound(err error) bool { return errors.Is(err, gorm.ErrRecordNotFound) }
