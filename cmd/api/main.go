package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/joho/godotenv"

	"github.com/gfmartins/booktrail/internal/container"
	"github.com/gfmartins/booktrail/internal/router"
)

var chiLambda *chiadapter.ChiLambda

func main() {
	_ = godotenv.Load()

	c := container.New()
	r := router.New(router.RouterConfig{
		UserHandler:    c.UserContainer.Handler,
		BookHandler:    c.BookContainer.Handler,
		LibraryHandler: c.LibraryContainer.Handler,
		GoalHandler:    c.GoalContainer.Handler,
		RecapHandler:   c.RecapContainer.Handler,
		SocialHandler:  c.SocialContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		chiLambda = chiadapter.New(r)
		lambda.Start(handler)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return chiLambda.ProxyWithContext(ctx, req)
}
