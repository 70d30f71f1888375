package transacao

import "errors"

// Erros de validação das operações do ciclo transacional. Todos são
// detectados antes de qualquer escrita no banco.
var (
	ErrImovelNaoAtivo          = errors.New("imóvel precisa estar Ativo para ser fechado")
	ErrImovelNaoFechado        = errors.New("imóvel não está Fechado")
	ErrResponsavelObrigatorio  = errors.New("fechamento com lead exige o corretor responsável")
	ErrPeriodoObrigatorio      = errors.New("locação exige data de início e de término do contrato")
	ErrDataFimInvalida         = errors.New("data de término deve ser posterior à data de início")
	ErrSomenteLocacao          = errors.New("operação disponível apenas para locações")
	ErrDataVigenciaObrigatoria = errors.New("reajuste exige a data de vigência do novo valor")
)

// ErrEfeitoParcial sinaliza aplicação parcial: o imóvel foi fechado e
// persistido, mas a atualização de status do lead falhou na sequência. O
// chamador decide se reapresenta a atualização do lead.
var ErrEfeitoParcial = errors.New("imóvel fechado, mas o status do lead não foi atualizado")
