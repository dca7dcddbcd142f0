package controllers

import (
	"protechub/db"
	"protechub/models"
	"protechub/utils"
)

// Projeções de listagem: códigos viram labels e datas viram o formato
// resumido. Só a resposta é transformada; o registro persistido fica como
// está no banco.

type EquipamentoView struct {
	Slug                 string `json:"slug"`
	Nome                 string `json:"nome"`
	Categoria            string `json:"categoria"`
	Validade             string `json:"validade"`
	QuantidadeTotal      int    `json:"quantidade_total"`
	QuantidadeEmprestada int    `json:"quantidade_emprestada"`
	QuantidadeDisponivel int    `json:"quantidade_disponivel"`
}

func toEquipamentoView(e models.Equipamento) EquipamentoView {
	return EquipamentoView{
		Slug:                 e.Slug,
		Nome:                 e.Nome,
		Categoria:            utils.CategoriaLabel(e.Categoria),
		Validade:             utils.DataResumida(e.Validade),
		QuantidadeTotal:      e.QuantidadeTotal,
		QuantidadeEmprestada: e.QuantidadeEmprestada,
		QuantidadeDisponivel: e.QuantidadeDisponivel(),
	}
}

type UsuarioView struct {
	Slug         string `json:"slug"`
	Nome         string `json:"nome"`
	Email        string `json:"email"`
	Cargo        string `json:"cargo"`
	Tipo         string `json:"tipo"`
	DataAdmissao string `json:"data_admissao"`
	Foto         string `json:"foto,omitempty"`
}

func toUsuarioView(u models.Usuario) UsuarioView {
	return UsuarioView{
		Slug:         u.Slug,
		Nome:         u.Nome,
		Email:        u.Email,
		Cargo:        utils.CargoLabel(u.Cargo),
		Tipo:         utils.TipoLabel(u.Tipo),
		DataAdmissao: utils.DataResumida(u.DataAdmissao),
		Foto:         u.Foto,
	}
}

type HistoricoView struct {
	Slug                 string `json:"slug"`
	Quantidade           int    `json:"quantidade"`
	Status               string `json:"status"`
	Observacao           string `json:"observacao,omitempty"`
	DataEmprestimo       string `json:"data_emprestimo"`
	DataDevolucaoEfetiva string `json:"data_devolucao_efetiva"`
	NomeEquipamento      string `json:"nome_equipamento"`
	NomeUsuario          string `json:"nome_usuario"`
}

func toHistoricoView(h models.Historico) HistoricoView {
	return HistoricoView{
		Slug:                 h.Slug,
		Quantidade:           h.Quantidade,
		Status:               utils.StatusLabel(h.Status),
		Observacao:           h.Observacao,
		DataEmprestimo:       utils.DataResumida(h.DataEmprestimo),
		DataDevolucaoEfetiva: utils.DataResumida(h.DataDevolucaoEfetiva),
		NomeEquipamento:      h.NomeEquipamento,
		NomeUsuario:          h.NomeUsuario,
	}
}

type EmprestimoView struct {
	Slug                  string `json:"slug"`
	Quantidade            int    `json:"quantidade"`
	Status                string `json:"status"`
	Observacao            string `json:"observacao,omitempty"`
	DataEmprestimo        string `json:"data_emprestimo"`
	DataDevolucaoPrevista string `json:"data_devolucao_prevista,omitempty"`
	EquipamentoSlug       string `json:"equipamento_slug,omitempty"`
	NomeEquipamento       string `json:"nome_equipamento,omitempty"`
	UsuarioSlug           string `json:"usuario_slug,omitempty"`
	NomeUsuario           string `json:"nome_usuario,omitempty"`
}

func toEmprestimoView(r db.EmprestimoRow) EmprestimoView {
	v := EmprestimoView{
		Slug:           r.Slug,
		Quantidade:     r.Quantidade,
		Status:         utils.StatusLabel(r.Status),
		Observacao:     r.Observacao,
		DataEmprestimo: utils.DataResumida(r.DataEmprestimo),
	}
	if r.DataDevolucaoPrevista != nil {
		v.DataDevolucaoPrevista = utils.DataResumida(*r.DataDevolucaoPrevista)
	}
	if r.EquipamentoSlug != nil {
		v.EquipamentoSlug = *r.EquipamentoSlug
	}
	if r.NomeEquipamento != nil {
		v.NomeEquipamento = *r.NomeEquipamento
	}
	if r.UsuarioSlug != nil {
		v.UsuarioSlug = *r.UsuarioSlug
	}
	if r.NomeUsuario != nil {
		v.NomeUsuario = *r.NomeUsuario
	}
	return v
}
