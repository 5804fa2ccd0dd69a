package Trees

import (
	"github.com/sirupsen/logrus"
)

// Log is the logger trees use unless WithLogger is given. Warning-class
// conditions (duplicate insert, missing value on remove) are logged at Warn.
var Log = logrus.New()

type config struct {
	log   logrus.FieldLogger
	name  string
	check bool
}

// Option configures a tree at construction.
type Option func(*config)

// WithLogger replaces Log for one tree.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		c.log = l
	}
}

// WithName sets the "tree" field of every log entry.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithCheck makes the tree run Check after every successful mutation,
// including the inserts of BSTreeFrom and RBTreeFrom, and
// panic with the *InvariantError it returns. Meant for debugging; it turns
// every mutation into O(n).
func WithCheck(on bool) Option {
	return func(c *config) {
		c.check = on
	}
}

func newConfig(kind string, opts []Option) config {
	c := config{log: Log, name: kind}
	for _, o := range opts {
		o(&c)
	}
	c.log = c.log.WithField("tree", c.name)
	return c
}
