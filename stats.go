package pairly

import (
	"reflect"

	"github.com/francoispqt/gojay"
	"github.com/viant/tagly/format/text"
)

type (
	//Stats represents a dispatch cost snapshot: bucket sizes with the
	//invocation counts a Dispatch call would perform
	Stats struct {
		Total      int
		SamePairs  int
		CrossPairs int
		Calls      int
		Buckets    BucketStats
	}

	//BucketStat represents a single bucket snapshot
	BucketStat struct {
		Name string
		Type reflect.Type
		Size int
	}

	//BucketStats represents bucket snapshots in declaration order
	BucketStats []*BucketStat
)

// Stats returns a snapshot of vector contents; same-type pairs count one
// invocation each, cross-type pairs two (both argument orders).
func (v *Vector) Stats() *Stats {
	var result = &Stats{Buckets: make(BucketStats, 0, len(v.buckets))}
	for i, b := range v.buckets {
		size := b.len()
		result.Total += size
		result.SamePairs += size * (size - 1) / 2
		for j := i + 1; j < len(v.buckets); j++ {
			result.CrossPairs += size * v.buckets[j].len()
		}
		result.Buckets = append(result.Buckets, &BucketStat{
			Name: formatLabel(v.typeSet.Label(i)),
			Type: b.elemType,
			Size: size,
		})
	}
	result.Calls = result.SamePairs + 2*result.CrossPairs
	return result
}

// MarshalJSONObject encodes stats
func (s *Stats) MarshalJSONObject(enc *gojay.Encoder) {
	enc.IntKey("total", s.Total)
	enc.IntKey("samePairs", s.SamePairs)
	enc.IntKey("crossPairs", s.CrossPairs)
	enc.IntKey("calls", s.Calls)
	enc.ArrayKey("buckets", s.Buckets)
}

// IsNil returns true if stats is nil
func (s *Stats) IsNil() bool {
	return s == nil
}

// MarshalJSONObject encodes a bucket snapshot
func (s *BucketStat) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("name", s.Name)
	enc.StringKey("type", s.Type.String())
	enc.IntKey("size", s.Size)
}

// IsNil returns true if bucket stat is nil
func (s *BucketStat) IsNil() bool {
	return s == nil
}

// MarshalJSONArray encodes bucket snapshots
func (s BucketStats) MarshalJSONArray(enc *gojay.Encoder) {
	for _, item := range s {
		enc.Object(item)
	}
}

// IsNil returns true if there are no bucket snapshots
func (s BucketStats) IsNil() bool {
	return len(s) == 0
}

func formatLabel(name string) string {
	src := text.DetectCaseFormat(name)
	if !src.IsDefined() {
		src = text.CaseFormatUpperCamel
	}
	return src.Format(name, text.CaseFormatLowerCamel)
}
