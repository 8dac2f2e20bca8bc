// Command devtoken mints an HS256 access token signed with SUPABASE_JWT_SECRET
// for calling the API against a local or sandbox deployment.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/services/shared/jwtmanager"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

func main() {
	subject := flag.String("sub", "", "user id placed in the sub claim")
	email := flag.String("email", "", "email placed in the email claim")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	if utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment) == constvars.AppEnvProduction {
		log.Fatal("devtoken refuses to run with APP_ENV=production")
	}

	internalConfig := config.NewInternalConfig()
	manager, err := jwtmanager.NewJWTManager(internalConfig.Supabase.JWTSecret, zap.NewNop())
	if err != nil {
		log.Fatalf("Error creating JWT manager: %v", err)
	}

	out, err := manager.CreateToken(context.Background(), &jwtmanager.CreateTokenInput{
		Subject: *subject,
		Email:   *email,
		TTL:     *ttl,
	})
	if err != nil {
		log.Fatalf("Error creating token: %v", err)
	}
	fmt.Println(out.Token)
}
