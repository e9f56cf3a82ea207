package cluster


//=========================================== Election Freshness


/*
	Verify Elector:
		freshness comparison between a candidate's log position and the local log position
			1.) reject if the candidate's term is not greater than the local term --> TermStale
			2.) reject if the candidate's (lastLogTerm, lastLogIndex) is lexicographically
				less than local --> LogMismatch (distinguishable from term-stale)
			3.) otherwise --> Agree
*/

func VerifyElector(local LogPosition, candidate LogPosition) Verdict {
	if candidate.Term <= local.Term { return TermStale }

	if candidate.LastLogTerm < local.LastLogTerm { return LogMismatch }
	if candidate.LastLogTerm == local.LastLogTerm && candidate.LastLogIndex < local.LastLogIndex {
		return LogMismatch
	}

	return Agree
}

/*
	Gate Election:
		a data group member only grants a vote once the candidate also looks at least as
		fresh on the metadata group's log -- a data-group-only election that elects a
		member the metadata group considers behind would hand leadership to a member that
		cannot yet see the current partition table.
			1.) reject on metadata log staleness first --> MetaLogStale
			2.) then defer to VerifyElector on the data group log
*/

func GateElection(localMeta LogPosition, candidateMeta LogPosition, localData LogPosition, candidateData LogPosition) Verdict {
	if candidateMeta.LastLogTerm < localMeta.LastLogTerm { return MetaLogStale }
	if candidateMeta.LastLogTerm == localMeta.LastLogTerm && candidateMeta.LastLogIndex < localMeta.LastLogIndex {
		return MetaLogStale
	}

	return VerifyElector(localData, candidateData)
}
