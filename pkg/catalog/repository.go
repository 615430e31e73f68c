package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"dataid/pkg/identifier"
	"dataid/pkg/types"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = errors.New("blob record not found")

// Repository 封装所有对 catalog 数据库的操作
type Repository struct {
	db *DB
}

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// Upsert 登记或更新一条路径记录
// 同一路径重复 add 是常态 (文件被改了再 add)，所以 Path 冲突时全量覆盖。
func (r *Repository) Upsert(ctx context.Context, rec *BlobRecord) error {
	if err := identifier.Validate(rec.DataID); err != nil {
		return fmt.Errorf("refusing to catalog invalid data id: %w", err)
	}

	err := r.db.GetConn().WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "path"}},
			UpdateAll: true,
		}).
		Create(rec).Error
	if err != nil {
		return fmt.Errorf("failed to upsert blob record: %w", err)
	}
	return nil
}

// GetByPath 按路径取记录
func (r *Repository) GetByPath(ctx context.Context, path string) (*BlobRecord, error) {
	var rec BlobRecord
	err := r.db.GetConn().WithContext(ctx).
		Where("path = ?", path).
		First(&rec).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetByDataID 反查：一个 DataID 可能登记在多个路径下 (完全相同的文件)
func (r *Repository) GetByDataID(ctx context.Context, id types.DataID) ([]BlobRecord, error) {
	var recs []BlobRecord
	err := r.db.GetConn().WithContext(ctx).
		Where("data_id = ?", string(id)).
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// List 返回全部记录 (CLI 列表用)
func (r *Repository) List(ctx context.Context) ([]BlobRecord, error) {
	var recs []BlobRecord
	err := r.db.GetConn().WithContext(ctx).
		Order("path").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// Remove 删除一条路径记录
func (r *Repository) Remove(ctx context.Context, path string) error {
	result := r.db.GetConn().WithContext(ctx).
		Where("path = ?", path).
		Delete(&BlobRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// SimilarResult 是一条相似检索命中
type SimilarResult struct {
	BlobRecord
	Distance int // 汉明距离 (0..64)，越小越相似
}

// FindSimilar 找出与给定 DataID 距离 <= maxDist 的所有记录，按距离升序
//
// 实现决策：把 Digest 拉回来在 Go 里算汉明距离，而不是在 SQL 里。
// 原因：popcount 在 sqlite/postgres 之间没有可移植写法，而 Digest 只有
// 9 字节、记录数是"用户登记过的文件数"这个量级，全量扫描毫无压力。
// 真到了百万级记录再考虑 pg 的 bit 运算或专门的 ANN 索引。
func (r *Repository) FindSimilar(ctx context.Context, id types.DataID, maxDist int) ([]SimilarResult, error) {
	target, err := identifier.Digest(id)
	if err != nil {
		return nil, err
	}

	var recs []BlobRecord
	if err := r.db.GetConn().WithContext(ctx).Find(&recs).Error; err != nil {
		return nil, err
	}

	var out []SimilarResult
	for _, rec := range recs {
		if len(rec.Digest) != len(target) {
			continue // 老版本/损坏的记录，跳过不报错
		}
		d := identifier.HammingDistance(target, rec.Digest)
		if d <= maxDist {
			out = append(out, SimilarResult{BlobRecord: rec, Distance: d})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].Path < out[j].Path // 距离相同按路径稳定排序
	})
	return out, nil
}
