package testdata

// ProbeConfig is a complete probe config fixture.
var ProbeConfig = []byte(`
	server = "https://vss.example.com:5050"
	key_file = "testdata/private.pem"
	validity = "1h"
	timeout = "5s"
	validate_tls_certificate = false
	check_expired = true
`)
