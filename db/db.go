package db

import (
	"fmt"
	"log"

	"protechub/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectDB(dsn string) *gorm.DB {
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := Migrate(conn); err != nil {
		log.Fatal("Failed to migrate models: ", err)
	}
	log.Println("Database connected")
	return conn
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Equipamento{},
		&models.Usuario{},
		&models.Emprestimo{},
		&models.Historico{},
	); err != nil {
		return err
	}

	// Busca por nome é sempre LOWER(nome) LIKE
	for _, tbl := range []string{models.EquipamentoTable, models.UsuarioTable} {
		if err := db.Exec(fmt.Sprintf(`
		  CREATE INDEX IF NOT EXISTS %s_nome_lower
		  ON %s (LOWER(nome));
		`, tbl, tbl)).Error; err != nil {
			return err
		}
	}

	// Listagem do histórico é ordenada pela devolução mais recente
	if err := db.Exec(fmt.Sprintf(`
	  CREATE INDEX IF NOT EXISTS %s_devolucao_desc
	  ON %s (data_devolucao_efetiva DESC);
	`, models.HistoricoTable, models.HistoricoTable)).Error; err != nil {
		return err
	}

	return nil
}
