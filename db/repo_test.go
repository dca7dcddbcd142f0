package db

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"protechub/models"

	"github.com/google/uuid"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// newTestDB abre um SQLite em memória (modernc.org/sqlite) isolado por teste.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dial := gormsqlite.Dialector{
		DriverName: "sqlite",
		DSN:        fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
	}
	conn, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	if err := conn.AutoMigrate(
		&models.Equipamento{},
		&models.Usuario{},
		&models.Emprestimo{},
		&models.Historico{},
	); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	return conn
}

func newTestRepo(t *testing.T) *Repo {
	t.Helper()
	return NewRepo(newTestDB(t))
}

func seedEquipamento(t *testing.T, r *Repo, nome string, total, emprestada int) *models.Equipamento {
	t.Helper()
	e := &models.Equipamento{
		Slug:                 uuid.NewString(),
		Nome:                 nome,
		Categoria:            models.CategoriaCapacete,
		Validade:             time.Now().AddDate(1, 0, 0),
		QuantidadeTotal:      total,
		QuantidadeEmprestada: emprestada,
	}
	if err := r.DB.Create(e).Error; err != nil {
		t.Fatalf("seed equipamento: %v", err)
	}
	return e
}

func seedUsuario(t *testing.T, r *Repo, nome, email, tipo string) *models.Usuario {
	t.Helper()
	u := &models.Usuario{
		Slug:         uuid.NewString(),
		Nome:         nome,
		Email:        strings.ToLower(email),
		SenhaHash:    "x",
		Cargo:        models.CargoTecnico,
		Tipo:         tipo,
		DataAdmissao: time.Now().AddDate(-1, 0, 0),
	}
	if err := r.DB.Create(u).Error; err != nil {
		t.Fatalf("seed usuario: %v", err)
	}
	return u
}
