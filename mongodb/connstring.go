package mongodb

import (
	"fmt"
	"net/url"
	"strings"
)

// BuildConnectionString assembles a MongoDB connection string from its
// parts. Credentials are URL-encoded so passwords containing '@', ':' or
// '/' survive, empty credentials produce an unauthenticated URL, and the
// port is omitted for mongodb+srv schemes since SRV discovery does not use
// one. Parameters is a raw query string such as
// "replicaSet=rs0&authSource=admin" and may be empty.
func BuildConnectionString(scheme, user, password, host, port, parameters string) string {
	hostPart := host
	if port != "" && !strings.HasPrefix(scheme, "mongodb+srv") {
		hostPart = fmt.Sprintf("%s:%s", host, port)
	}

	connStr := fmt.Sprintf("%s://%s/", scheme, hostPart)
	if user != "" {
		connStr = fmt.Sprintf("%s://%s@%s/", scheme, url.UserPassword(user, password).String(), hostPart)
	}

	if parameters != "" {
		connStr += "?" + parameters
	}

	return connStr
}
