package out

type ReplicationPartition struct {
	PartitionID     int   `json:"partitionId"`
	Leader          int   `json:"leader"`
	Replicas        []int `json:"replicas"`
	ISR             []int `json:"isr"`
	OfflineReplicas []int `json:"offlineReplicas"`
}

type ReplicationSummary struct {
	TotalPartitions               int `json:"totalPartitions"`
	PartitionsWithFullReplication int `json:"partitionsWithFullReplication"`
	PartitionsWithAllISR          int `json:"partitionsWithAllISR"`
	PartitionsWithOfflineReplicas int `json:"partitionsWithOfflineReplicas"`
	MinISR                        int `json:"minISR"`
	MaxISR                        int `json:"maxISR"`
}

type ReplicationSnapshot struct {
	Topic             string                 `json:"topic"`
	PartitionCount    int                    `json:"partitionCount"`
	ReplicationFactor int                    `json:"replicationFactor"`
	Partitions        []ReplicationPartition `json:"partitions"`
	Summary           ReplicationSummary     `json:"summary"`
}
