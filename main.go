package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/SaiNageswarS/go-api-boot/dotenv"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-api-boot/odm"
	"github.com/SaiNageswarS/go-api-boot/server"
	"github.com/svergara/ramos-rag/controller"
	"github.com/svergara/ramos-rag/llm"
	"go.uber.org/zap"
)

func main() {
	dotenv.LoadEnv()

	boot, err := server.New().
		GRPCPort(":50051").
		HTTPPort(":8080").
		ProvideFunc(odm.ProvideMongoClient).
		ProvideFunc(llm.ProvideGeminiClient).
		AddRestController(controller.ProvideChatController).
		AddRestController(controller.ProvideCourseController).
		AddRestController(controller.ProvideProfessorController).
		AddRestController(controller.ProvideHealthController).
		Build()

	if err != nil {
		logger.Fatal("Dependency Injection Failed", zap.Error(err))
	}

	ctx := getCancellableContext()
	boot.Serve(ctx)
}

func getCancellableContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sig
		cancel()
	}()

	return ctx
}
