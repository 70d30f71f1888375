package notificacao

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"
)

// EnviarWebhookFechamento avisa o sistema de mensageria que um imóvel foi
// fechado. Melhor esforço: falha de entrega só é logada, nunca bloqueia a
// operação que a disparou.
func EnviarWebhookFechamento(imovelID uint, finalidade string, valor float64) {
	url := os.Getenv("WEBHOOK_FECHAMENTO_URL")
	if url == "" {
		return
	}

	payload := map[string]interface{}{
		"mensagem":   "Imóvel fechado",
		"imovelId":   imovelID,
		"finalidade": finalidade,
		"valor":      valor,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		logrus.WithError(err).WithField("imovelId", imovelID).Warn("Erro ao enviar webhook de fechamento")
		return
	}
	defer resp.Body.Close()
}
