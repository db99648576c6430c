package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrRouteNotFound       = "VAL_004" // Rota inexistente
	ErrMethodNotAllowed    = "VAL_005" // Método HTTP não suportado na rota

	// Erros de relatório
	ErrChartNotFound     = "RPT_001" // Gráfico inexistente para a seleção
	ErrEmptyReport       = "RPT_002" // Seleção não gera relatório
	ErrExportNotFound    = "RPT_003" // Download expirado ou inexistente
	ErrUnsupportedFormat = "RPT_004" // Formato de imagem não suportado

	// Erros do servidor
	ErrInternalServer   = "SRV_001" // Erro interno do servidor
	ErrDatasetNotLoaded = "SRV_002" // Dataset ainda não carregado
	ErrRenderFailure    = "SRV_003" // Falha ao desenhar gráfico ou planilha
)

var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrRouteNotFound:       http.StatusNotFound,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrChartNotFound:       http.StatusNotFound,
	ErrEmptyReport:         http.StatusNotFound,
	ErrExportNotFound:      http.StatusNotFound,
	ErrUnsupportedFormat:   http.StatusBadRequest,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatasetNotLoaded:    http.StatusServiceUnavailable,
	ErrRenderFailure:       http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// StatusFor retorna o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}
