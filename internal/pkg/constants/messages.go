package constants

// User-facing messages of the combo screens
const (
	MsgComboCreateFailed = "Erro ao criar combo no servidor."
	MsgComboListFailed   = "Erro ao listar combos no servidor."
	MsgComboUpdateFailed = "Erro ao atualizar combo no servidor."
	MsgComboDeleteFailed = "Erro ao deletar combo no servidor."
	MsgComboEmpty        = "Nenhum combo cadastrado. Use o formulário acima para criar um!"
	MsgWaypointsInvalid  = "Por favor, preencha todos os campos de todos os Pontos Turísticos."
	MsgPriceInvalid      = "Preço fixo inválido."
	MsgLastWaypoint      = "O combo precisa de pelo menos um Ponto Turístico."
)

// User-facing messages of the driver screens
const (
	MsgDriverCreateFailed  = "Erro ao criar motorista."
	MsgDriverListFailed    = "Erro ao listar motoristas."
	MsgDriverUpdateFailed  = "Erro ao atualizar motorista."
	MsgDriverDeleteFailed  = "Erro ao deletar motorista."
	MsgDriverApproveFailed = "Erro ao aprovar motorista."
	MsgDriverRejectFailed  = "Erro ao rejeitar motorista."
	MsgDriverEmpty         = "Nenhum motorista cadastrado."
	MsgDriverCreated       = "Motorista criado com sucesso!"
)

// User-facing messages of the login screen
const (
	MsgLoginFailed  = "Falha na autenticação. Credenciais inválidas."
	MsgLoginNetwork = "Erro de rede ou servidor não respondeu. Verifique a API do Render."
	MsgLoginMissing = "Informe e-mail e senha."
)
