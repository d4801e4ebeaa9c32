package engine

import (
	"fmt"
	"sort"

	"github.com/Dipanshu93198/DRS/internal/domain"
	"github.com/Dipanshu93198/DRS/internal/geo"
)

// Cluster groups active reports by spatial proximity using single-linkage
// connected components: two reports share a cluster when a chain of
// pairwise distances <= radiusKm connects them. The partition is
// independent of input order; the naive "attach to the first nearby
// cluster" rule the system used to have was order-dependent and is gone.
// A non-positive radius falls back to the configured default. Empty or
// fully inactive input yields an empty slice, not an error.
func (eng *Engine) Cluster(reports []domain.SOSReport, radiusKm float64) ([]domain.Cluster, error) {
	const op = "engine.Cluster"

	if radiusKm <= 0 {
		radiusKm = eng.cfg.DefaultClusterRadiusKm
	}

	active := make([]domain.SOSReport, 0, len(reports))
	for _, r := range reports {
		if r.Status.Active() {
			active = append(active, r)
		}
	}
	if len(active) == 0 {
		return []domain.Cluster{}, nil
	}

	uf := newUnionFind(len(active))
	for i := 0; i < len(active); i++ {
		for j := i + 1; j < len(active); j++ {
			d, err := geo.DistanceKm(active[i].Location, active[j].Location)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
			if d <= radiusKm {
				uf.union(i, j)
			}
		}
	}

	groups := make(map[int][]domain.SOSReport)
	for i, r := range active {
		root := uf.find(i)
		groups[root] = append(groups[root], r)
	}

	clusters := make([]domain.Cluster, 0, len(groups))
	for _, members := range groups {
		clusters = append(clusters, buildCluster(members))
	}

	// Membership is deterministic; the slice order is not guaranteed by
	// the grouping itself, so sort for stable responses.
	sort.Slice(clusters, func(i, j int) bool {
		if clusters[i].IncidentCount != clusters[j].IncidentCount {
			return clusters[i].IncidentCount > clusters[j].IncidentCount
		}
		return clusters[i].Centroid.Lat < clusters[j].Centroid.Lat
	})

	return clusters, nil
}

func buildCluster(members []domain.SOSReport) domain.Cluster {
	c := domain.Cluster{
		IncidentCount: len(members),
	}

	var sumLat, sumLng, sumSeverity float64
	types := make(map[domain.EmergencyType]struct{})
	for _, m := range members {
		sumLat += m.Location.Lat
		sumLng += m.Location.Lng
		sumSeverity += m.Severity
		types[m.EmergencyType] = struct{}{}
		c.MemberIDs = append(c.MemberIDs, m.ID)
		if m.ReportedAt.After(c.MostRecentReport) {
			c.MostRecentReport = m.ReportedAt
		}
	}

	n := float64(len(members))
	// Arithmetic-mean centroid is fine at city scale.
	c.Centroid = domain.GeoPoint{Lat: sumLat / n, Lng: sumLng / n}
	c.AverageSeverity = sumSeverity / n

	for t := range types {
		c.EmergencyTypes = append(c.EmergencyTypes, t)
	}
	sort.Slice(c.EmergencyTypes, func(i, j int) bool { return c.EmergencyTypes[i] < c.EmergencyTypes[j] })
	sort.Slice(c.MemberIDs, func(i, j int) bool { return c.MemberIDs[i].String() < c.MemberIDs[j].String() })

	return c
}

type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	if u.rank[ra] < u.rank[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	if u.rank[ra] == u.rank[rb] {
		u.rank[ra]++
	}
}
