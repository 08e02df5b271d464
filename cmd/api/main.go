package main

import (
	"context"
	"log"

	"github.com/ecuabus/user-api/config"
	"github.com/ecuabus/user-api/internal/bootstrap"
	"github.com/ecuabus/user-api/internal/users/repository"
	"github.com/ecuabus/user-api/internal/users/service"

	usershttp "github.com/ecuabus/user-api/internal/users/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	authClient, fsClient, err := bootstrap.InitializeFirebase(context.Background(), &cfg.Firebase)
	if err != nil {
		log.Fatalf("firebase: %v", err)
	}
	defer fsClient.Close()

	userService := service.NewUserService(
		repository.NewIdentityStore(authClient),
		repository.NewProfileRepo(fsClient, cfg.Firebase.Layout),
	)

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: cfg.App.ServiceName,
		Version:     cfg.App.Version,
		Users:       usershttp.New(userService),
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	log.Fatal(r.Run(":" + cfg.Server.Port))
}
