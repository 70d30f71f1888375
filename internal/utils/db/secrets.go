package db

import (
	"context"
	"encoding/json"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/sirupsen/logrus"
)

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func initSecretsConfig() *secretsmanager.Client {
	config, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		logrus.Fatal(err)
	}

	return secretsmanager.NewFromConfig(config)
}

// retrieveCredentials prioriza credenciais vindas do ambiente; sem elas, busca
// no Secrets Manager (ambientes gerenciados).
func retrieveCredentials(secretID string) (string, string) {
	secretUsername := os.Getenv("DB_USERNAME")
	secretPassword := os.Getenv("DB_PASSWORD")
	if secretUsername != "" && secretPassword != "" {
		return secretUsername, secretPassword
	}

	secrets := initSecretsConfig()
	input := &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(secretID),
		VersionStage: aws.String("AWSCURRENT"),
	}

	result, err := secrets.GetSecretValue(context.TODO(), input)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao buscar credenciais do banco")
	}
	secretString := []byte(*result.SecretString)

	var secret Credentials
	if err = json.Unmarshal(secretString, &secret); err != nil {
		logrus.WithError(err).Fatal("Credenciais do banco em formato inválido")
	}

	return secret.Username, secret.Password
}
