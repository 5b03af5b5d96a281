package store

import (
	"context"

	"github.com/valldsonsantos/PI-MVP-Senac/apperrors"
	"github.com/valldsonsantos/PI-MVP-Senac/models"

	"github.com/georgysavva/scany/v2/sqlscan"
)

var collectionPointColumns = []string{"id", "nome", "endereco", "latitude", "longitude", "horario_func"}

// CollectionPoints lists every point in insertion order.
func (s *Store) CollectionPoints(ctx context.Context) ([]*models.CollectionPoint, error) {
	query, args, err := builder().
		Select(collectionPointColumns...).
		From(collectionPointTableName).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindStorage, "failed to generate collection points query")
	}

	points := make([]*models.CollectionPoint, 0)
	if err := sqlscan.Select(ctx, s.q, &points, query, args...); err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindStorage, "Erro de banco de dados")
	}
	if points == nil {
		points = make([]*models.CollectionPoint, 0)
	}

	return points, nil
}
