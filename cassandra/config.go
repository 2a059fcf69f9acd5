package cassandra

import (
	"os"
	"time"

	gocqlastra "github.com/datastax/gocql-astra"
	"github.com/gocql/gocql"
)

// DefaultTimeout bounds session establishment and statement execution when
// the config does not specify one.
const DefaultTimeout = 10 * time.Second

// Config holds the connection parameters for a Cassandra/Astra store. Two
// connection modes are supported: a secure connect bundle, or explicit
// hosts and port. The bundle mode is selected when SecureBundlePath is set
// and the file exists on disk; otherwise hosts/port are used.
type Config struct {
	Keyspace string
	Table    string
	Username string
	Password string

	// SecureBundlePath points at a packaged credential/topology artifact for
	// managed clusters.
	SecureBundlePath string

	Hosts   []string
	Port    int
	Timeout time.Duration
}

// UsesBundle reports whether the secure-connect-bundle mode is in effect.
func (c Config) UsesBundle() bool {
	if c.SecureBundlePath == "" {
		return false
	}
	_, err := os.Stat(c.SecureBundlePath)
	return err == nil
}

func (c Config) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return DefaultTimeout
}

// ClusterConfig builds the gocql cluster configuration for the selected
// connection mode.
func (c Config) ClusterConfig() (*gocql.ClusterConfig, error) {
	if c.UsesBundle() {
		return gocqlastra.NewClusterFromBundle(c.SecureBundlePath, c.Username, c.Password, c.timeout())
	}
	cluster := gocql.NewCluster(c.Hosts...)
	if c.Port > 0 {
		cluster.Port = c.Port
	}
	cluster.Keyspace = c.Keyspace
	cluster.Timeout = c.timeout()
	if c.Username != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: c.Username,
			Password: c.Password,
		}
	}
	return cluster, nil
}
