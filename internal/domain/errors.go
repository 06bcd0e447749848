package domain

import (
	"errors"
)

// Erros do motor de analytics. Apenas ErrInvalidRange e a indisponibilidade
// total do banco devem derrubar uma requisição inteira; o restante degrada
// por link ou por faceta.
var (
	// ErrInvalidRange indica que a data inicial é posterior à final
	ErrInvalidRange = errors.New("data inicial posterior à data final")

	// ErrUnparseableDate indica um valor de data que não pôde ser interpretado.
	// Recuperável: o ponto de dado é descartado, nunca propagado.
	ErrUnparseableDate = errors.New("valor de data não interpretável")

	// ErrProviderUnavailable indica que o provedor de links curtos está sem
	// credencial ou completamente fora do ar; dispara o fallback simulado.
	ErrProviderUnavailable = errors.New("provedor de links curtos indisponível")

	// ErrLinkNotFound indica que o link pedido não existe no cadastro
	ErrLinkNotFound = errors.New("link não encontrado")
)
