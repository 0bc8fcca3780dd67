package models

// PartitionRecord describes one partition's replication state as reported by
// the cluster metadata.
type PartitionRecord struct {
	ID              int
	Leader          int
	Replicas        []int
	ISR             []int
	OfflineReplicas []int
}

// Summary aggregates replication health over a topic's partitions.
type Summary struct {
	TotalPartitions               int
	PartitionsWithFullReplication int
	PartitionsWithAllISR          int
	PartitionsWithOfflineReplicas int
	MinISR                        int
	MaxISR                        int
}

// ReplicationSnapshot is the per-request health view of one topic. It is
// computed fresh on every call and never cached.
type ReplicationSnapshot struct {
	Topic      string
	Partitions []PartitionRecord
	Summary    Summary
}

// ReplicationFactor returns the replica-set size of the first partition,
// which serves as the reference for the whole topic.
func (s *ReplicationSnapshot) ReplicationFactor() int {
	if len(s.Partitions) == 0 {
		return 0
	}
	return len(s.Partitions[0].Replicas)
}

// ComputeSummary derives the aggregate health figures from a non-empty
// partition list. "Full replication" means a partition's replica-set size
// matches partition 0's, not the cluster-configured replication factor.
func ComputeSummary(partitions []PartitionRecord) Summary {
	summary := Summary{
		TotalPartitions: len(partitions),
	}

	if len(partitions) == 0 {
		return summary
	}

	reference := len(partitions[0].Replicas)
	summary.MinISR = len(partitions[0].ISR)
	summary.MaxISR = len(partitions[0].ISR)

	for _, partition := range partitions {
		if len(partition.Replicas) == reference {
			summary.PartitionsWithFullReplication++
		}
		if len(partition.ISR) == len(partition.Replicas) {
			summary.PartitionsWithAllISR++
		}
		if len(partition.OfflineReplicas) > 0 {
			summary.PartitionsWithOfflineReplicas++
		}
		if len(partition.ISR) < summary.MinISR {
			summary.MinISR = len(partition.ISR)
		}
		if len(partition.ISR) > summary.MaxISR {
			summary.MaxISR = len(partition.ISR)
		}
	}

	return summary
}
