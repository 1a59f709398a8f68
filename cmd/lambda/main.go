package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/go-chi/chi/v5"

	"github.com/quizdesk/quizdesk-api/internal/container"
	"github.com/quizdesk/quizdesk-api/internal/router"
)

var chiLambda *chiadapter.ChiLambdaV2

func init() {
	c := container.New()

	handler := router.New(router.RouterConfig{
		UserHandler:    c.UserContainer.Handler,
		SubjectHandler: c.SubjectContainer.Handler,
		ChapterHandler: c.ChapterContainer.Handler,
		QuizHandler:    c.QuizContainer.Handler,
		AttemptHandler: c.AttemptContainer.Handler,
		SearchHandler:  c.SearchContainer.Handler,
	})

	mux := chi.NewRouter()
	mux.Mount("/", handler)
	chiLambda = chiadapter.NewV2(mux)
}

func handleRequest(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	return chiLambda.ProxyWithContextV2(ctx, req)
}

func main() {
	lambda.Start(handleRequest)
}
