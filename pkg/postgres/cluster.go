package postgres

import "github.com/Masterminds/squirrel"

// Cluster routes statements to a write primary and a read replica of the
// same store. Both may point at the same pool when no replica is configured.
type Cluster struct {
	primary *Postgres
	replica *Postgres
}

func NewCluster(primary, replica *Postgres) *Cluster {
	if replica == nil {
		replica = primary
	}
	return &Cluster{primary: primary, replica: replica}
}

// Primary is the target for every write and for reads that must observe them.
func (c *Cluster) Primary() Executor {
	return c.primary.Pool
}

// Replica is the target for reads that tolerate replication lag.
func (c *Cluster) Replica() Executor {
	return c.replica.Pool
}

func (c *Cluster) PrimaryPostgres() *Postgres {
	return c.primary
}

func (c *Cluster) ReplicaPostgres() *Postgres {
	return c.replica
}

func (c *Cluster) Builder() squirrel.StatementBuilderType {
	return c.primary.Builder
}

func (c *Cluster) HasDedicatedReplica() bool {
	return c.replica != c.primary
}

func (c *Cluster) Close() {
	if c.HasDedicatedReplica() {
		c.replica.Close()
	}
	c.primary.Close()
}
