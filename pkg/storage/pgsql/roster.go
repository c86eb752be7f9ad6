// Copyright 2022 The jackal Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pgsqlrepository

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	kitlog "github.com/go-kit/log"
	"github.com/lib/pq"
	rostermodel "github.com/ortuman/traffic/pkg/model/roster"
)

const rosterItemsTableName = "roster_items"

var rosterItemColumns = []string{
	"owner",
	"contact",
	"name",
	"groups",
	"sub_to",
	"sub_from",
	"ask",
	"approved",
	"pending_in",
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

type pgSQLRosterRep struct {
	conn   conn
	logger kitlog.Logger
}

func (r *pgSQLRosterRep) UpsertRosterItem(ctx context.Context, ri *rostermodel.Item) error {
	q := sq.Insert(rosterItemsTableName).
		Columns(rosterItemColumns...).
		Values(
			ri.Owner,
			ri.Contact,
			ri.Name,
			pq.Array(ri.Groups),
			ri.To,
			ri.From,
			ri.Ask,
			ri.Approved,
			ri.In,
		).
		Suffix("ON CONFLICT (owner, contact) DO UPDATE SET name = EXCLUDED.name, groups = EXCLUDED.groups, sub_to = EXCLUDED.sub_to, sub_from = EXCLUDED.sub_from, ask = EXCLUDED.ask, approved = EXCLUDED.approved, pending_in = EXCLUDED.pending_in")

	_, err := q.RunWith(r.conn).ExecContext(ctx)
	return err
}

func (r *pgSQLRosterRep) DeleteRosterItem(ctx context.Context, owner, contact string) error {
	_, err := sq.Delete(rosterItemsTableName).
		Where(sq.And{sq.Eq{"owner": owner}, sq.Eq{"contact": contact}}).
		RunWith(r.conn).ExecContext(ctx)
	return err
}

func (r *pgSQLRosterRep) FetchRosterItems(ctx context.Context, owner string) ([]*rostermodel.Item, error) {
	q := sq.Select(rosterItemColumns...).
		From(rosterItemsTableName).
		Where(sq.Eq{"owner": owner}).
		OrderBy("contact")

	rows, err := q.RunWith(r.conn).QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer closeRows(rows, r.logger)

	var ret []*rostermodel.Item
	for rows.Next() {
		ri, err := scanRosterItem(rows)
		if err != nil {
			return nil, err
		}
		ret = append(ret, ri)
	}
	return ret, rows.Err()
}

func (r *pgSQLRosterRep) FetchRosterItem(ctx context.Context, owner, contact string) (*rostermodel.Item, error) {
	q := sq.Select(rosterItemColumns...).
		From(rosterItemsTableName).
		Where(sq.And{sq.Eq{"owner": owner}, sq.Eq{"contact": contact}})

	ri, err := scanRosterItem(q.RunWith(r.conn).QueryRowContext(ctx))
	switch {
	case err == nil:
		return ri, nil
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	default:
		return nil, err
	}
}

func scanRosterItem(scanner rowScanner) (*rostermodel.Item, error) {
	var ri rostermodel.Item
	err := scanner.Scan(
		&ri.Owner,
		&ri.Contact,
		&ri.Name,
		pq.Array(&ri.Groups),
		&ri.To,
		&ri.From,
		&ri.Ask,
		&ri.Approved,
		&ri.In,
	)
	if err != nil {
		return nil, err
	}
	return &ri, nil
}
