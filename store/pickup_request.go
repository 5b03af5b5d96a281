package store

import (
	"context"

	"github.com/valldsonsantos/PI-MVP-Senac/apperrors"
	"github.com/valldsonsantos/PI-MVP-Senac/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"
)

// CAST keeps dates as the text they were stored with; the driver would
// otherwise turn DATE columns into timestamps.
var pickupRequestViewColumns = []string{
	"a.id",
	"a.usuario_id",
	"a.ponto_coleta_id",
	"CAST(a.data_retirada AS TEXT) AS data_retirada",
	"a.tipo_lixo",
	"a.endereco_coleta",
	"a.ponto_referencia",
	"a.status",
	"u.nome AS nome_usuario",
	"u.email AS email_usuario",
	"p.nome AS nome_ponto_coleta",
}

// CreatePickupRequest inserts req with its status forced to StatusPending and
// stores the generated id back into req. Unknown owner or collection point
// ids fail with apperrors.KindIntegrity.
func (s *Store) CreatePickupRequest(ctx context.Context, req *models.PickupRequest) (int64, error) {
	req.Status = models.StatusPending

	query, args, err := builder().
		Insert(pickupRequestTableName).
		Columns("usuario_id", "ponto_coleta_id", "data_retirada", "tipo_lixo", "endereco_coleta", "ponto_referencia", "status").
		Values(req.UserID, req.CollectionPointID, req.PickupDate, req.WasteType, req.Address, req.Landmark, req.Status).
		ToSql()
	if err != nil {
		return 0, apperrors.Wrap(err, apperrors.KindStorage, "failed to generate insert query")
	}

	result, err := s.q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, classify(err, "Erro de integridade ao criar agendamento", "Erro de banco de dados")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, apperrors.Wrap(err, apperrors.KindStorage, "Erro de banco de dados")
	}

	req.ID = id
	return id, nil
}

// PickupRequests lists every request, newest pickup date first, with owner
// and collection point names. Requests without an owner row are left out;
// requests without a point row keep null point fields.
func (s *Store) PickupRequests(ctx context.Context) ([]*models.PickupRequestView, error) {
	query, args, err := builder().
		Select(pickupRequestViewColumns...).
		From(pickupRequestTableName + " a").
		Join(userTableName + " u ON a.usuario_id = u.id").
		LeftJoin(collectionPointTableName + " p ON a.ponto_coleta_id = p.id").
		OrderBy("a.data_retirada DESC", "a.id DESC").
		ToSql()
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindStorage, "failed to generate pickup requests query")
	}

	requests := make([]*models.PickupRequestView, 0)
	if err := sqlscan.Select(ctx, s.q, &requests, query, args...); err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindStorage, "Erro de banco de dados")
	}
	if requests == nil {
		requests = make([]*models.PickupRequestView, 0)
	}

	return requests, nil
}

// UpdatePickupRequestStatus sets the status of one request and reports how
// many rows matched. Zero means the id does not exist.
func (s *Store) UpdatePickupRequestStatus(ctx context.Context, id int64, status string) (int64, error) {
	query, args, err := builder().
		Update(pickupRequestTableName).
		Set("status", status).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return 0, apperrors.Wrap(err, apperrors.KindStorage, "failed to generate update query")
	}

	result, err := s.q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, classify(err, "Erro de integridade na atualização", "Erro de banco de dados na atualização")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, apperrors.KindStorage, "Erro de banco de dados na atualização")
	}

	return affected, nil
}
