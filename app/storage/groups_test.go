package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/go-pkgz/testutils/containers"
	"github.com/stretchr/testify/suite"

	"github.com/umputun/strikeguard/app/storage/engine"
)

// GroupsTestSuite checks that stores of different groups share a database without seeing each other's data
type GroupsTestSuite struct {
	suite.Suite
	ctx         context.Context
	dbs         map[string][2]*engine.SQL // engine name -> connections for gr1 and gr2
	pgContainer *containers.PostgresTestContainer
}

func TestGroupsSuite(t *testing.T) {
	suite.Run(t, new(GroupsTestSuite))
}

func (s *GroupsTestSuite) SetupSuite() {
	s.ctx = context.Background()
	s.dbs = make(map[string][2]*engine.SQL)

	sqliteFile := filepath.Join(s.T().TempDir(), "groups.db")
	gr1, err := engine.NewSqlite(sqliteFile, "gr1")
	s.Require().NoError(err)
	gr2, err := engine.NewSqlite(sqliteFile, "gr2")
	s.Require().NoError(err)
	s.dbs["sqlite"] = [2]*engine.SQL{gr1, gr2}

	if testing.Short() {
		return
	}
	s.T().Log("starting postgres container")
	s.pgContainer = containers.NewPostgresTestContainerWithDB(s.ctx, s.T(), "groups")
	connStr := s.pgContainer.ConnectionString()
	pg1, err := engine.NewPostgres(s.ctx, connStr, "gr1")
	s.Require().NoError(err)
	pg2, err := engine.NewPostgres(s.ctx, connStr, "gr2")
	s.Require().NoError(err)
	s.dbs["postgres"] = [2]*engine.SQL{pg1, pg2}
}

func (s *GroupsTestSuite) TearDownSuite() {
	for _, pair := range s.dbs {
		pair[0].Close()
		pair[1].Close()
	}
}

// SetupTest drops all tables, each test starts with empty stores
func (s *GroupsTestSuite) SetupTest() {
	for _, pair := range s.dbs {
		for _, table := range []string{"snapshots", "whitelist", "actions"} {
			_, err := pair[0].Exec("DROP TABLE IF EXISTS " + table)
			s.Require().NoError(err)
		}
	}
}

func (s *GroupsTestSuite) TestWhitelist() {
	for name, pair := range s.dbs {
		s.Run(name, func() {
			wl1, err := NewWhitelist(s.ctx, pair[0])
			s.Require().NoError(err)
			wl2, err := NewWhitelist(s.ctx, pair[1])
			s.Require().NoError(err)

			s.Require().NoError(wl1.Add(s.ctx, WhitelistEntry{UserID: 1, UserName: "alice"}))
			s.Require().NoError(wl2.Add(s.ctx, WhitelistEntry{UserID: 1, UserName: "alice-in-gr2"}))
			s.Require().NoError(wl2.Add(s.ctx, WhitelistEntry{UserID: 2, UserName: "bob"}))

			list1, err := wl1.List(s.ctx)
			s.Require().NoError(err)
			s.Require().Len(list1, 1)
			s.Equal("alice", list1[0].UserName)

			list2, err := wl2.List(s.ctx)
			s.Require().NoError(err)
			s.Len(list2, 2)

			s.Require().NoError(wl1.Remove(s.ctx, 1))
			e, err := wl2.Get(s.ctx, 1)
			s.Require().NoError(err, "removal in gr1 doesn't affect gr2")
			s.Equal("alice-in-gr2", e.UserName)
			s.ErrorIs(wl1.Remove(s.ctx, 2), ErrNotFound)
		})
	}
}

func (s *GroupsTestSuite) TestActions() {
	for name, pair := range s.dbs {
		s.Run(name, func() {
			acts1, err := NewActions(s.ctx, pair[0], 2)
			s.Require().NoError(err)
			acts2, err := NewActions(s.ctx, pair[1], 2)
			s.Require().NoError(err)

			for range 3 {
				s.Require().NoError(acts1.Add(s.ctx, Action{Kind: "delete", UserID: 1, Strikes: 1}))
			}
			s.Require().NoError(acts2.Add(s.ctx, Action{Kind: "ban", UserID: 2, Strikes: 3}))

			res1, err := acts1.Read(s.ctx, 10)
			s.Require().NoError(err)
			s.Len(res1, 2, "trimmed to max size within the group")

			res2, err := acts2.Read(s.ctx, 10)
			s.Require().NoError(err)
			s.Require().Len(res2, 1, "trimming of gr1 doesn't touch gr2")
			s.Equal("ban", res2[0].Kind)

			res, err := acts2.ReadUser(s.ctx, 1, 10)
			s.Require().NoError(err)
			s.Empty(res)
		})
	}
}

func (s *GroupsTestSuite) TestSnapshots() {
	for name, pair := range s.dbs {
		s.Run(name, func() {
			snap1, err := NewSnapshots(s.ctx, pair[0])
			s.Require().NoError(err)
			snap2, err := NewSnapshots(s.ctx, pair[1])
			s.Require().NoError(err)

			s.Require().NoError(snap1.Save(s.ctx, "ledger", []byte(`{"gr":1}`)))

			_, err = snap2.Load(s.ctx, "ledger")
			s.Require().Error(err)

			s.Require().NoError(snap2.Save(s.ctx, "ledger", []byte(`{"gr":2}`)))
			data, err := snap1.Load(s.ctx, "ledger")
			s.Require().NoError(err)
			s.JSONEq(`{"gr":1}`, string(data))

			list, err := snap2.List(s.ctx)
			s.Require().NoError(err)
			s.Require().Len(list, 1)
			s.Equal("ledger", list[0].Kind)
		})
	}
}
