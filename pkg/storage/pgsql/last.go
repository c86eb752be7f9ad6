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
	presencemodel "github.com/ortuman/traffic/pkg/model/presence"
)

const lastTableName = "last_presences"

type pgSQLLastRep struct {
	conn conn
}

func (r *pgSQLLastRep) UpsertLast(ctx context.Context, last *presencemodel.Last) error {
	_, err := sq.Insert(lastTableName).
		Columns("owner", "presence", "stamp").
		Values(last.Owner, last.Presence, last.Timestamp).
		Suffix("ON CONFLICT (owner) DO UPDATE SET presence = EXCLUDED.presence, stamp = EXCLUDED.stamp").
		RunWith(r.conn).ExecContext(ctx)
	return err
}

func (r *pgSQLLastRep) FetchLast(ctx context.Context, owner string) (*presencemodel.Last, error) {
	q := sq.Select("owner", "presence", "stamp").
		From(lastTableName).
		Where(sq.Eq{"owner": owner})

	var last presencemodel.Last
	err := q.RunWith(r.conn).
		QueryRowContext(ctx).
		Scan(&last.Owner, &last.Presence, &last.Timestamp)
	switch {
	case err == nil:
		return &last, nil
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	default:
		return nil, err
	}
}

func (r *pgSQLLastRep) DeleteLast(ctx context.Context, owner string) error {
	_, err := sq.Delete(lastTableName).
		Where(sq.Eq{"owner": owner}).
		RunWith(r.conn).
		ExecContext(ctx)
	return err
}
