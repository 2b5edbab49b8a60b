package main

import (
	"fmt"
	"log"
	"os"
	"os/user"
	"path"
	"time"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/vss-go/vssprobe/lib"
	"github.com/vss-go/vssprobe/probe"
)

var (
	u, _    = user.Current()
	cfg     = pflag.String("config", path.Join(u.HomeDir, ".vssprobe.conf"), "Path to config file")
	_       = pflag.String("server", "http://localhost:5050", "VSS server base URL")
	_       = pflag.String("key_file", "keys/private.pem", "Path to the PEM private key the server trusts")
	_       = pflag.String("validity", "24h", "Validity window of forged tokens")
	_       = pflag.String("timeout", "30s", "HTTP request timeout")
	_       = pflag.Bool("check_expired", false, "Also probe with an expired token signed by the trusted key")
	version = pflag.Bool("version", false, "Print version and exit")
)

func main() {
	pflag.Parse()
	if *version {
		fmt.Printf("%s\n", lib.Version)
		os.Exit(0)
	}
	log.SetPrefix("vssprobe: ")
	log.SetFlags(0)

	c, err := probe.ReadConfig(*cfg)
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	timeout, err := time.ParseDuration(c.Timeout)
	if err != nil {
		log.Fatalf("Invalid timeout: %v", err)
	}
	scenarios, err := probe.Scenarios(c)
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	fmt.Println("===")
	fmt.Println("VSS JWT Authentication Integration Test")
	fmt.Printf("Testing against VSS server at %s\n", c.Server)
	fmt.Println()

	runner := probe.NewRunner(c.Server, timeout, c.ValidateTLSCertificate)
	var passed, failed int
	var run error
	for _, s := range scenarios {
		fmt.Printf("%s ... ", s.Name)
		o := runner.Run(s)
		if o.Pass {
			passed++
			fmt.Printf("ok (%s) - %s\n", o.Elapsed, o.Detail)
		} else {
			failed++
			fmt.Printf("FAILED (%s) - %s\n", o.Elapsed, o.Detail)
			run = multierror.Append(run, errors.Errorf("%s: %s", o.Name, o.Detail))
		}
	}

	fmt.Println()
	fmt.Printf("Results: %d passed, %d failed\n", passed, failed)
	if failed > 0 {
		log.Printf("%v", run)
		os.Exit(1)
	}
}
