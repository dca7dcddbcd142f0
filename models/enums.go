package models

// Códigos armazenados no banco; os labels ficam só na camada de exibição.

const (
	CategoriaCapacete  = "CAP"
	CategoriaLuvas     = "LUV"
	CategoriaOculos    = "OCU"
	CategoriaBotas     = "BOT"
	CategoriaAuricular = "AUR"
	CategoriaCinto     = "CIN"
)

var CategoriaLabels = map[string]string{
	CategoriaCapacete:  "Capacete",
	CategoriaLuvas:     "Luvas",
	CategoriaOculos:    "Óculos de Proteção",
	CategoriaBotas:     "Botas",
	CategoriaAuricular: "Protetor Auricular",
	CategoriaCinto:     "Cinto de Segurança",
}

const (
	CargoAlmoxarife  = "ALM"
	CargoEletricista = "ELE"
	CargoMecanico    = "MEC"
	CargoSoldador    = "SOL"
	CargoTecnico     = "TEC"
)

var CargoLabels = map[string]string{
	CargoAlmoxarife:  "Almoxarife",
	CargoEletricista: "Eletricista",
	CargoMecanico:    "Mecânico",
	CargoSoldador:    "Soldador",
	CargoTecnico:     "Técnico de Segurança",
}

const (
	TipoAdmin       = "ADM"
	TipoSupervisor  = "SUP"
	TipoColaborador = "COL"
)

var TipoLabels = map[string]string{
	TipoAdmin:       "Administrador",
	TipoSupervisor:  "Supervisor",
	TipoColaborador: "Colaborador",
}

const (
	StatusEmprestado = "EMP"
	StatusDevolvido  = "DEV"
	StatusDanificado = "DAN"
	StatusExtraviado = "EXT"
)

var StatusLabels = map[string]string{
	StatusEmprestado: "Emprestado",
	StatusDevolvido:  "Devolvido",
	StatusDanificado: "Devolvido com Dano",
	StatusExtraviado: "Extraviado",
}

// Grupos usados pelo controle de acesso. O grupo vem do Tipo do usuário.
const (
	GrupoAdmin      = "Admin"
	GrupoSupervisor = "Supervisor"
)

// GruposDoTipo devolve os grupos concedidos por um código de tipo.
func GruposDoTipo(tipo string) []string {
	switch tipo {
	case TipoAdmin:
		return []string{GrupoAdmin}
	case TipoSupervisor:
		return []string{GrupoSupervisor}
	default:
		return nil
	}
}
