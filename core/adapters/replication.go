package adapters

import (
	"github.com/gregor-kafka/server/core/models"
	"github.com/gregor-kafka/server/core/wire/out"
)

func PartitionRecordToWire(partition models.PartitionRecord) out.ReplicationPartition {
	return out.ReplicationPartition{
		PartitionID:     partition.ID,
		Leader:          partition.Leader,
		Replicas:        partition.Replicas,
		ISR:             partition.ISR,
		OfflineReplicas: partition.OfflineReplicas,
	}
}

func ReplicationSnapshotToWire(snapshot *models.ReplicationSnapshot) out.ReplicationSnapshot {
	partitionsWire := make([]out.ReplicationPartition, 0, len(snapshot.Partitions))
	for _, partition := range snapshot.Partitions {
		partitionsWire = append(partitionsWire, PartitionRecordToWire(partition))
	}

	return out.ReplicationSnapshot{
		Topic:             snapshot.Topic,
		PartitionCount:    len(snapshot.Partitions),
		ReplicationFactor: snapshot.ReplicationFactor(),
		Partitions:        partitionsWire,
		Summary: out.ReplicationSummary{
			TotalPartitions:               snapshot.Summary.TotalPartitions,
			PartitionsWithFullReplication: snapshot.Summary.PartitionsWithFullReplication,
			PartitionsWithAllISR:          snapshot.Summary.PartitionsWithAllISR,
			PartitionsWithOfflineReplicas: snapshot.Summary.PartitionsWithOfflineReplicas,
			MinISR:                        snapshot.Summary.MinISR,
			MaxISR:                        snapshot.Summary.MaxISR,
		},
	}
}
