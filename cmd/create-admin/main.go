// create-admin da de alta el primer usuario administrador contra la base de
// datos configurada. Útil para el arranque inicial, cuando todavía no hay
// ningún admin que pueda usar el endpoint de alta de personal.
//
// Uso: go run ./cmd/create-admin -name "Ana Gómez" -email ana@almacen.local -password <pass>
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/postgres"
	"github.com/jhoicas/almacen-api/pkg/config"
)

func main() {
	name := flag.String("name", "", "nombre del administrador")
	email := flag.String("email", "", "email del administrador")
	password := flag.String("password", "", "contraseña (mínimo 8 caracteres)")
	flag.Parse()

	if *name == "" || *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "uso: create-admin -name <nombre> -email <email> -password <pass>")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	userUC := usecase.NewUserUseCase(
		postgres.NewUserRepository(pool),
		postgres.NewRoleRepository(pool),
	)
	out, err := userUC.Create(dto.CreateUserRequest{
		Name:     *name,
		Email:    *email,
		Password: *password,
		Role:     entity.RoleAdmin,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "crear admin: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("admin creado: %s (%s) código %s\n", out.Name, out.Email, out.Code)
}
