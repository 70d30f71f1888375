package main

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/vistasoft/api-imoveis/internal/corretor"
	"github.com/vistasoft/api-imoveis/internal/historico"
	"github.com/vistasoft/api-imoveis/internal/imovel"
	"github.com/vistasoft/api-imoveis/internal/lead"
	"github.com/vistasoft/api-imoveis/internal/rateio"
	"github.com/vistasoft/api-imoveis/internal/transacao"
	"github.com/vistasoft/api-imoveis/internal/utils/db"
	"github.com/vistasoft/api-imoveis/internal/vigencia"
)

func main() {
	// .env é opcional (em produção as variáveis vêm do ambiente)
	_ = godotenv.Load()

	logrus.SetFormatter(&logrus.JSONFormatter{})

	database, err := db.GetDB()
	if err != nil {
		logrus.Fatal("Erro ao conectar no banco: ", err)
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&imovel.Imovel{},
		&lead.Lead{},
		&corretor.Corretor{},
		&historico.HistoricoFinanceiro{},
		&rateio.RateioComissao{},
	); err != nil {
		logrus.Fatal("Erro no AutoMigrate: ", err)
	}

	// Handlers
	imovelHandler := imovel.NewHandler(database)
	leadHandler := lead.NewHandler(database)
	corretorHandler := corretor.NewHandler(database)
	historicoHandler := historico.NewHandler(database)
	rateioHandler := rateio.NewHandler(database)
	transacaoHandler := transacao.NewHandler(database)
	vigenciaHandler := vigencia.NewHandler(database)

	// Router
	r := mux.NewRouter()

	// Rotas de imóveis (cadastro)
	r.HandleFunc("/imoveis", imovelHandler.Criar).Methods("POST")
	r.HandleFunc("/imoveis", imovelHandler.Listar).Methods("GET")
	r.HandleFunc("/imoveis/{id}", imovelHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/imoveis/{id}", imovelHandler.Atualizar).Methods("PUT")
	r.HandleFunc("/imoveis/{id}", imovelHandler.Deletar).Methods("DELETE")

	// Ciclo transacional
	r.HandleFunc("/imoveis/{id}/fechar", transacaoHandler.Fechar).Methods("POST")
	r.HandleFunc("/imoveis/{id}/reativar", transacaoHandler.Reativar).Methods("POST")
	r.HandleFunc("/imoveis/{id}/renovar", transacaoHandler.Renovar).Methods("POST")
	r.HandleFunc("/imoveis/{id}/reajustar", transacaoHandler.Reajustar).Methods("POST")

	// Rateio de comissão
	r.HandleFunc("/imoveis/{id}/rateios", rateioHandler.ListarPorImovel).Methods("GET")
	r.HandleFunc("/imoveis/{id}/rateios", rateioHandler.Salvar).Methods("PUT")

	// Histórico financeiro e vigência
	r.HandleFunc("/imoveis/{id}/historico", historicoHandler.ListarPorImovel).Methods("GET")
	r.HandleFunc("/imoveis/{id}/vigencia", vigenciaHandler.Consultar).Methods("GET")

	// Rotas de leads
	r.HandleFunc("/leads", leadHandler.Criar).Methods("POST")
	r.HandleFunc("/leads", leadHandler.Listar).Methods("GET")
	r.HandleFunc("/leads/{id}", leadHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/leads/{id}/status", leadHandler.AtualizarStatus).Methods("PATCH")

	// Rotas de corretores
	r.HandleFunc("/corretores", corretorHandler.Criar).Methods("POST")
	r.HandleFunc("/corretores", corretorHandler.Listar).Methods("GET")
	r.HandleFunc("/corretores/{id}", corretorHandler.BuscarPorID).Methods("GET")

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}).Handler(r)

	porta := os.Getenv("HTTP_PORT")
	if porta == "" {
		porta = "8080"
	}

	logrus.WithField("porta", porta).Info("Servidor de imóveis no ar")
	logrus.Fatal(http.ListenAndServe(":"+porta, handler))
}
