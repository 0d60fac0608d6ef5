// Command zentropy-auth drives the Zentropy authentication flows from the
// terminal: credential login, session checks, OAuth negotiation and
// consent, provider link/unlink, and email verification codes.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/http/cookiejar"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ApexAZ/zentropy-go/auth"
	"github.com/ApexAZ/zentropy-go/internal/config"
	"github.com/ApexAZ/zentropy-go/internal/session"
	"github.com/ApexAZ/zentropy-go/internal/transport"
	"github.com/ApexAZ/zentropy-go/oauth"
	"github.com/ApexAZ/zentropy-go/verification"
)

func main() {
	var (
		op         = flag.String("op", "login", "operation: login, session, providers, oauth, consent, link, unlink, send-code, verify-code")
		email      = flag.String("email", "", "account email")
		password   = flag.String("password", "", "account password")
		provider   = flag.String("provider", "", "OAuth provider name")
		credential = flag.String("credential", "", "OAuth credential or authorization code")
		code       = flag.String("code", "", "6-digit verification code")
		consent    = flag.Bool("consent-given", false, "link the OAuth identity to the existing account")
		token      = flag.String("token", os.Getenv("ZENTROPY_ACCESS_TOKEN"), "bearer token for authenticated operations")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	jar, _ := cookiejar.New(nil)
	client := transport.New(cfg.APIBaseURL,
		transport.WithDoer(&http.Client{Timeout: cfg.HTTPTimeout, Jar: jar}),
		transport.WithTokenSource(func() string { return *token }),
	)

	ctx := context.Background()
	switch *op {
	case "login":
		runLogin(ctx, client, *email, *password)
	case "session":
		ok, err := auth.NewClient(client).CheckSession(ctx)
		if err != nil {
			log.Fatalf("session check: %v", err)
		}
		fmt.Printf("session valid: %v\n", ok)
	case "providers":
		for _, p := range oauth.AvailableProviders() {
			fmt.Printf("%s\t%s\t%s\n", p.Name, p.DisplayName, p.BrandColor)
		}
	case "oauth":
		runOAuth(ctx, client, *provider, *credential)
	case "consent":
		runConsent(ctx, client, *provider, *credential, *consent)
	case "link":
		result, err := oauth.NewEngine(client).LinkProvider(ctx, oauth.LinkRequest{Credential: *credential, Provider: *provider})
		if err != nil {
			log.Fatalf("link %s: %v", *provider, err)
		}
		fmt.Printf("%s (linked %s)\n", result.Message, result.ProviderIdentifier)
	case "unlink":
		result, err := oauth.NewEngine(client).UnlinkProvider(ctx, oauth.UnlinkRequest{Password: *password, Provider: *provider})
		if err != nil {
			log.Fatalf("unlink %s: %v", *provider, err)
		}
		fmt.Println(result.Message)
	case "send-code":
		flow := verification.NewFlow(client, *email)
		if err := flow.SendCode(ctx); err != nil {
			log.Fatalf("send code: %v", err)
		}
		fmt.Println("verification code sent")
	case "verify-code":
		runVerify(ctx, client, *email, *code)
	default:
		log.Fatalf("unknown operation %q", *op)
	}
}

func runLogin(ctx context.Context, client *transport.Client, email, password string) {
	result, err := auth.NewClient(client).Login(ctx, auth.Credentials{Email: email, Password: password})
	if err != nil {
		log.Fatalf("login: %v", err)
	}
	if !result.Success {
		if result.Field != "" {
			log.Fatalf("login failed (%s): %s", result.Field, result.Message)
		}
		log.Fatalf("login failed: %s", result.Message)
	}
	fmt.Println(result.Message)
	if user, err := result.DecodedUser(); err == nil && user != nil {
		fmt.Printf("signed in as %s %s <%s> (%s)\n", user.FirstName, user.LastName, user.Email, user.Role)
	}
}

func runOAuth(ctx context.Context, client *transport.Client, provider, credential string) {
	req := oauth.Request{Provider: provider}
	fillFlowField(&req.Credential, &req.AuthorizationCode, provider, credential)

	outcome, err := oauth.NewEngine(client).ProcessOAuth(ctx, req)
	if err != nil {
		log.Fatalf("oauth %s: %v", provider, err)
	}
	if outcome.ConsentRequired() {
		c := outcome.Consent
		fmt.Printf("consent required: %s already has an account for %s (current method: %s)\n",
			c.ProviderDisplayName, c.ExistingEmail, c.SecurityContext.ExistingAuthMethod)
		fmt.Println("re-run with -op consent and -consent-given to decide")
		return
	}
	saveSession(ctx, outcome.Auth)
}

func runConsent(ctx context.Context, client *transport.Client, provider, credential string, consentGiven bool) {
	decision := oauth.ConsentDecision{Provider: provider, ConsentGiven: consentGiven}
	fillFlowField(&decision.Credential, &decision.AuthorizationCode, provider, credential)

	result, err := oauth.NewEngine(client).ProcessOAuthConsent(ctx, decision)
	if err != nil {
		log.Fatalf("oauth consent %s: %v", provider, err)
	}
	saveSession(ctx, result)
}

func runVerify(ctx context.Context, client *transport.Client, email, code string) {
	flow := verification.NewFlow(client, email)
	flow.Input.Paste(code)
	result, err := flow.VerifyCode(ctx)
	if err != nil {
		log.Fatalf("verify code: %v", err)
	}
	fmt.Println(result.Message)
}

// fillFlowField routes the CLI's single -credential flag into whichever
// field the provider's flow expects.
func fillFlowField(credential, code *string, provider, value string) {
	if p, ok := oauth.GetProvider(provider); ok && p.Name == oauth.ProviderMicrosoft {
		*code = value
		return
	}
	*credential = value
}

func saveSession(ctx context.Context, result *oauth.AuthResponse) {
	fmt.Printf("signed in as %s (%s)\n", result.User.Name, result.Action)
	fmt.Println(result.AccessToken)

	cfg, err := config.Load()
	if err != nil {
		return
	}
	ttl := session.TTLFor(result.AccessToken, time.Now())
	if ttl <= 0 {
		return
	}
	store := session.NewStore(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword}))
	if err := store.Ping(ctx); err != nil {
		log.Printf("session cache unavailable: %v", err)
		return
	}
	id := session.NewSessionID()
	if err := store.Save(ctx, id, session.Session{Token: result.AccessToken, User: result.User}, ttl); err != nil {
		log.Printf("cache session: %v", err)
		return
	}
	fmt.Printf("cached session %s\n", id)
}
